package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-emissions/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{items: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]match.Match, error) {
	return r.List(ctx, match.Filter{SeasonID: seasonID})
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if filter.IsEmpty() {
		return append(make([]match.Match, 0, len(r.items)), r.items...), nil
	}

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if filter.Matches(item) {
			out = append(out, item)
		}
	}
	return out, nil
}
