package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SeasonService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewSeasonService(db *sqlx.DB, stores *store.Stores) *SeasonService {
	return &SeasonService{db: db, stores: stores}
}

type SeasonInput struct {
	Name      string     `json:"name"`
	Weeks     int        `json:"weeks"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (in SeasonInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.Weeks < 1 {
		return ErrInvalidSeason
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return ErrInvalidDates
	}
	return nil
}

func (s *SeasonService) List(ctx context.Context) ([]league.Season, error) {
	return s.stores.Seasons.List(ctx)
}

func (s *SeasonService) Get(ctx context.Context, id uuid.UUID) (*league.Season, error) {
	return s.stores.Seasons.Get(ctx, id)
}

func (s *SeasonService) Active(ctx context.Context) (*league.Season, error) {
	season, err := s.stores.Seasons.GetActive(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoActiveSeason
	}
	return season, err
}

// Create adds a draft season.
func (s *SeasonService) Create(ctx context.Context, in SeasonInput) (*league.Season, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	season := &league.Season{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(in.Name),
		Weeks:     in.Weeks,
		Status:    league.SeasonDraft,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if err := s.stores.Seasons.Create(ctx, tx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return season, tx.Commit()
}

func (s *SeasonService) Update(ctx context.Context, id uuid.UUID, in SeasonInput) (*league.Season, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	season, err := s.stores.Seasons.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	season.Name = strings.TrimSpace(in.Name)
	season.Weeks = in.Weeks
	season.StartDate = in.StartDate
	season.EndDate = in.EndDate

	if err := s.stores.Seasons.Update(ctx, tx, season); err != nil {
		return nil, fmt.Errorf("failed to update season: %w", err)
	}
	return season, tx.Commit()
}

// Activate makes the season live and completes whichever season was live before.
func (s *SeasonService) Activate(ctx context.Context, id uuid.UUID) (*league.Season, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.stores.Seasons.Activate(ctx, tx, id); err != nil {
		return nil, err
	}
	season, err := s.stores.Seasons.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"season_id": id, "name": season.Name}).Info("season activated")
	return season, tx.Commit()
}

// Complete ends a season without activating another one.
func (s *SeasonService) Complete(ctx context.Context, id uuid.UUID) (*league.Season, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	season, err := s.stores.Seasons.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	season.Status = league.SeasonCompleted
	if err := s.stores.Seasons.Update(ctx, tx, season); err != nil {
		return nil, fmt.Errorf("failed to complete season: %w", err)
	}
	return season, tx.Commit()
}
