package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-emissions/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{items: append([]team.Team(nil), teams...)}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}
