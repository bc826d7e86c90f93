package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-emissions/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	return &LeagueRepository{items: append([]league.League(nil), leagues...)}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}
