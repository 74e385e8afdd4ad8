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

type ScheduleService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewScheduleService(db *sqlx.DB, stores *store.Stores) *ScheduleService {
	return &ScheduleService{db: db, stores: stores}
}

// Preview builds the round robin for a season from the current roster without saving it.
func (s *ScheduleService) Preview(ctx context.Context, seasonID uuid.UUID) ([]league.Match, error) {
	season, err := s.stores.Seasons.Get(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	players, err := s.stores.Players.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := make([]int64, 0, len(players))
	for _, p := range players {
		roster = append(roster, p.ID)
	}

	return schedule.GenerateSeasonSchedule(roster, season.Weeks, &season.ID)
}

// GenerateSeason replaces every match of the season with a fresh round robin.
func (s *ScheduleService) GenerateSeason(ctx context.Context, seasonID uuid.UUID) ([]league.Match, error) {
	matches, err := s.Preview(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.stores.Matches.ReplaceSeason(ctx, tx, &seasonID, matches); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"season_id": seasonID, "matches": len(matches)}).Info("season schedule generated")
	return s.stores.Matches.List(ctx, store.MatchFilter{SeasonID: &seasonID})
}

func (s *ScheduleService) ClearSeason(ctx context.Context, seasonID uuid.UUID) error {
	if _, err := s.stores.Seasons.Get(ctx, seasonID); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Matches.DeleteSeason(ctx, tx, &seasonID); err != nil {
		return err
	}
	return tx.Commit()
}
