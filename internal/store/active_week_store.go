package store

import (
	"context"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/jmoiron/sqlx"
)

type ActiveWeekStore struct {
	db *sqlx.DB
}

const setActiveWeekQuery = `
	INSERT INTO active_week (id, week, season_id) VALUES (1, :week, :season_id)
	ON CONFLICT (id) DO UPDATE SET week = excluded.week, season_id = excluded.season_id
`

func NewActiveWeekStore(db *sqlx.DB) *ActiveWeekStore {
	return &ActiveWeekStore{db: db}
}

// Get returns ErrNotFound until a week has been set.
func (s *ActiveWeekStore) Get(ctx context.Context) (*league.ActiveWeek, error) {
	var week league.ActiveWeek
	if err := s.db.GetContext(ctx, &week, "SELECT week, season_id FROM active_week WHERE id = 1"); err != nil {
		return nil, notFound(err)
	}
	return &week, nil
}

func (s *ActiveWeekStore) Set(ctx context.Context, tx *sqlx.Tx, week league.ActiveWeek) error {
	_, err := tx.NamedExecContext(ctx, setActiveWeekQuery, week)
	return err
}
