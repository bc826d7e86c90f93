package match

import "context"

// Repository reads matches from the reference data store.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Match, error)
	List(ctx context.Context, filter Filter) ([]Match, error)
}
