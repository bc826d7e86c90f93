package league

import "context"

// Repository reads leagues from the reference data store.
type Repository interface {
	List(ctx context.Context) ([]League, error)
}
