package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/jmoiron/sqlx"
)

type SeasonStore struct {
	db *sqlx.DB
}

const (
	getSeasonQuery    = "SELECT * FROM seasons WHERE id = ?"
	createSeasonQuery = `
		INSERT INTO seasons (id, name, weeks, status, start_date, end_date)
		VALUES (:id, :name, :weeks, :status, :start_date, :end_date)
	`
	updateSeasonQuery = `
		UPDATE seasons SET
		name = :name,
		weeks = :weeks,
		status = :status,
		start_date = :start_date,
		end_date = :end_date
		WHERE id = :id
	`
	demoteActiveSeasonsQuery = "UPDATE seasons SET status = 'completed' WHERE status = 'active' AND id <> ?"
	activateSeasonQuery      = "UPDATE seasons SET status = 'active' WHERE id = ?"
)

func NewSeasonStore(db *sqlx.DB) *SeasonStore {
	return &SeasonStore{db: db}
}

func (s *SeasonStore) List(ctx context.Context) ([]league.Season, error) {
	seasons := []league.Season{}
	err := s.db.SelectContext(ctx, &seasons, "SELECT * FROM seasons ORDER BY created_at DESC, name ASC")
	return seasons, err
}

func (s *SeasonStore) Get(ctx context.Context, id uuid.UUID) (*league.Season, error) {
	var season league.Season
	if err := s.db.GetContext(ctx, &season, getSeasonQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &season, nil
}

func (s *SeasonStore) GetTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*league.Season, error) {
	var season league.Season
	if err := tx.GetContext(ctx, &season, getSeasonQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &season, nil
}

func (s *SeasonStore) GetActive(ctx context.Context) (*league.Season, error) {
	var season league.Season
	if err := s.db.GetContext(ctx, &season, "SELECT * FROM seasons WHERE status = 'active'"); err != nil {
		return nil, notFound(err)
	}
	return &season, nil
}

func (s *SeasonStore) Create(ctx context.Context, tx *sqlx.Tx, season *league.Season) error {
	if _, err := tx.NamedExecContext(ctx, createSeasonQuery, season); err != nil {
		return err
	}
	return tx.GetContext(ctx, season, getSeasonQuery, season.ID)
}

func (s *SeasonStore) Update(ctx context.Context, tx *sqlx.Tx, season *league.Season) error {
	return expectRows(tx.NamedExecContext(ctx, updateSeasonQuery, season))
}

// Activate makes the season the only active one. Any other active season is completed.
func (s *SeasonStore) Activate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, demoteActiveSeasonsQuery, id); err != nil {
		return err
	}
	return expectRows(tx.ExecContext(ctx, activateSeasonQuery, id))
}
