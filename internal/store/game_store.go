package store

import (
	"context"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/jmoiron/sqlx"
)

type GameStore struct {
	db *sqlx.DB
}

const (
	getGameQuery    = "SELECT * FROM games WHERE id = ?"
	createGameQuery = `
		INSERT INTO games (name, category, is_chosen, assigned_week, assigned_season)
		VALUES (:name, :category, :is_chosen, :assigned_week, :assigned_season)
	`
	updateGameQuery = `
		UPDATE games SET
		name = :name,
		category = :category,
		is_chosen = :is_chosen,
		assigned_week = :assigned_week,
		assigned_season = :assigned_season
		WHERE id = :id
	`
	resetGamesQuery = "UPDATE games SET is_chosen = 0, assigned_week = NULL, assigned_season = NULL"
)

func NewGameStore(db *sqlx.DB) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) List(ctx context.Context) ([]league.Game, error) {
	games := []league.Game{}
	err := s.db.SelectContext(ctx, &games, "SELECT * FROM games ORDER BY name COLLATE NOCASE ASC")
	return games, err
}

func (s *GameStore) ListTx(ctx context.Context, tx *sqlx.Tx) ([]league.Game, error) {
	games := []league.Game{}
	err := tx.SelectContext(ctx, &games, "SELECT * FROM games ORDER BY name COLLATE NOCASE ASC")
	return games, err
}

func (s *GameStore) Get(ctx context.Context, id int64) (*league.Game, error) {
	var game league.Game
	if err := s.db.GetContext(ctx, &game, getGameQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &game, nil
}

func (s *GameStore) GetTx(ctx context.Context, tx *sqlx.Tx, id int64) (*league.Game, error) {
	var game league.Game
	if err := tx.GetContext(ctx, &game, getGameQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &game, nil
}

// NameTakenTx reports whether another game already uses the name, ignoring case.
func (s *GameStore) NameTakenTx(ctx context.Context, tx *sqlx.Tx, name string, excludeID int64) (bool, error) {
	var taken bool
	err := tx.GetContext(ctx, &taken,
		"SELECT EXISTS (SELECT 1 FROM games WHERE name = ? COLLATE NOCASE AND id <> ?)", name, excludeID)
	return taken, err
}

func (s *GameStore) Create(ctx context.Context, tx *sqlx.Tx, game *league.Game) error {
	res, err := tx.NamedExecContext(ctx, createGameQuery, game)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return tx.GetContext(ctx, game, getGameQuery, id)
}

func (s *GameStore) Update(ctx context.Context, tx *sqlx.Tx, game *league.Game) error {
	return expectRows(tx.NamedExecContext(ctx, updateGameQuery, game))
}

func (s *GameStore) Delete(ctx context.Context, tx *sqlx.Tx, id int64) error {
	return expectRows(tx.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id))
}

// ResetAll puts every game back on the wheel.
func (s *GameStore) ResetAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, resetGamesQuery)
	return err
}
