package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ActiveWeekService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewActiveWeekService(db *sqlx.DB, stores *store.Stores) *ActiveWeekService {
	return &ActiveWeekService{db: db, stores: stores}
}

// Get returns week 1 of no particular season until a week has been set.
func (s *ActiveWeekService) Get(ctx context.Context) (league.ActiveWeek, error) {
	week, err := s.stores.ActiveWeek.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return league.ActiveWeek{Week: 1}, nil
	}
	if err != nil {
		return league.ActiveWeek{}, err
	}
	return *week, nil
}

func (s *ActiveWeekService) Set(ctx context.Context, week int, seasonID *uuid.UUID) (league.ActiveWeek, error) {
	if week < 1 {
		return league.ActiveWeek{}, ErrInvalidWeek
	}
	if seasonID != nil {
		season, err := s.stores.Seasons.Get(ctx, *seasonID)
		if err != nil {
			return league.ActiveWeek{}, err
		}
		if week > season.Weeks {
			return league.ActiveWeek{}, ErrInvalidWeek
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return league.ActiveWeek{}, err
	}
	defer tx.Rollback()

	active := league.ActiveWeek{Week: week, SeasonID: seasonID}
	if err := s.stores.ActiveWeek.Set(ctx, tx, active); err != nil {
		return league.ActiveWeek{}, err
	}

	logrus.WithFields(logrus.Fields{"week": week, "season_id": seasonID}).Info("active week changed")
	return active, tx.Commit()
}
