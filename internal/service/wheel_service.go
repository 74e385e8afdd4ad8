package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/schedule"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type WheelService struct {
	db     *sqlx.DB
	stores *store.Stores
	wheel  *schedule.Wheel
}

func NewWheelService(db *sqlx.DB, stores *store.Stores, wheel *schedule.Wheel) *WheelService {
	return &WheelService{db: db, stores: stores, wheel: wheel}
}

type wheelState struct {
	roster      []int64
	weekMatches []league.Match
	allMatches  []league.Match
}

func (s *WheelService) load(ctx context.Context, seasonID *uuid.UUID, week int) (*wheelState, error) {
	if week < 1 {
		return nil, ErrInvalidWeek
	}
	if seasonID != nil {
		season, err := s.stores.Seasons.Get(ctx, *seasonID)
		if err != nil {
			return nil, err
		}
		if week > season.Weeks {
			return nil, ErrInvalidWeek
		}
	}

	players, err := s.stores.Players.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := make([]int64, 0, len(players))
	for _, p := range players {
		roster = append(roster, p.ID)
	}

	weekMatches, err := s.stores.Matches.List(ctx, store.MatchFilter{SeasonID: seasonID, Unscoped: seasonID == nil, Week: &week})
	if err != nil {
		return nil, err
	}

	// Byes and previous meetings count across every season
	allMatches, err := s.stores.Matches.List(ctx, store.MatchFilter{})
	if err != nil {
		return nil, err
	}

	return &wheelState{roster: roster, weekMatches: weekMatches, allMatches: allMatches}, nil
}

// Candidates lists who is still on the wheel for the week.
func (s *WheelService) Candidates(ctx context.Context, seasonID *uuid.UUID, week int) ([]schedule.Candidate, error) {
	state, err := s.load(ctx, seasonID, week)
	if err != nil {
		return nil, err
	}
	return schedule.Candidates(state.roster, state.weekMatches), nil
}

// Spin draws the next pairing of the week and appends it to the matches.
func (s *WheelService) Spin(ctx context.Context, seasonID *uuid.UUID, week int) (*league.Match, error) {
	state, err := s.load(ctx, seasonID, week)
	if err != nil {
		return nil, err
	}

	match, err := s.wheel.Spin(week, seasonID, state.roster, state.weekMatches, state.allMatches)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.stores.Matches.Create(ctx, tx, &match); err != nil {
		return nil, fmt.Errorf("failed to save spin result: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"week":      week,
		"season_id": seasonID,
		"player_1":  match.Player1ID,
		"player_2":  match.Player2ID,
		"bye":       match.IsBye,
	}).Info("wheel spun")
	return &match, tx.Commit()
}
