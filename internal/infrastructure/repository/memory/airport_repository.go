package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
)

type AirportRepository struct {
	mu    sync.RWMutex
	items []airport.Airport
}

func NewAirportRepository(airports []airport.Airport) *AirportRepository {
	return &AirportRepository{items: append([]airport.Airport(nil), airports...)}
}

func (r *AirportRepository) List(_ context.Context) ([]airport.Airport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]airport.Airport, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}
