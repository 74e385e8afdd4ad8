package service

import (
	"context"

	"github.com/javajohnHub/hsw/internal/standings"
	"github.com/javajohnHub/hsw/internal/store"
)

type StandingsService struct {
	stores *store.Stores
}

func NewStandingsService(stores *store.Stores) *StandingsService {
	return &StandingsService{stores: stores}
}

// Standings ranks the current player snapshot. Nothing is cached.
func (s *StandingsService) Standings(ctx context.Context) ([]standings.Standing, error) {
	players, err := s.stores.Players.List(ctx)
	if err != nil {
		return nil, err
	}
	return standings.Rank(players), nil
}
