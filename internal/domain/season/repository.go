package season

import "context"

// Repository reads seasons from the reference data store.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
}
