package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-emissions/internal/domain/season"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	items []season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	return &SeasonRepository{items: append([]season.Season(nil), seasons...)}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}
