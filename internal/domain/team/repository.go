package team

import "context"

// Repository reads teams from the reference data store.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
}
