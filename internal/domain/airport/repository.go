package airport

import "context"

// Repository reads team airports from the reference data store.
type Repository interface {
	List(ctx context.Context) ([]Airport, error)
}
