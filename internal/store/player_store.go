package store

import (
	"context"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/jmoiron/sqlx"
)

type PlayerStore struct {
	db *sqlx.DB
}

const (
	listPlayersQuery  = "SELECT * FROM players ORDER BY id ASC"
	getPlayerQuery    = "SELECT * FROM players WHERE id = ?"
	createPlayerQuery = `
		INSERT INTO players (name, wins, losses, not_played, points)
		VALUES (:name, :wins, :losses, :not_played, :points)
	`
	updatePlayerQuery = `
		UPDATE players SET
		name = :name,
		wins = :wins,
		losses = :losses,
		not_played = :not_played,
		points = :points
		WHERE id = :id
	`
	deletePlayerQuery = "DELETE FROM players WHERE id = ?"
)

func NewPlayerStore(db *sqlx.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

// List returns every player in creation order, which is also the roster order used for scheduling.
func (s *PlayerStore) List(ctx context.Context) ([]league.Player, error) {
	players := []league.Player{}
	err := s.db.SelectContext(ctx, &players, listPlayersQuery)
	return players, err
}

func (s *PlayerStore) Get(ctx context.Context, id int64) (*league.Player, error) {
	var player league.Player
	if err := s.db.GetContext(ctx, &player, getPlayerQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &player, nil
}

func (s *PlayerStore) GetTx(ctx context.Context, tx *sqlx.Tx, id int64) (*league.Player, error) {
	var player league.Player
	if err := tx.GetContext(ctx, &player, getPlayerQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &player, nil
}

// Create inserts the player and fills in the generated id and timestamps.
func (s *PlayerStore) Create(ctx context.Context, tx *sqlx.Tx, player *league.Player) error {
	res, err := tx.NamedExecContext(ctx, createPlayerQuery, player)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return tx.GetContext(ctx, player, getPlayerQuery, id)
}

func (s *PlayerStore) Update(ctx context.Context, tx *sqlx.Tx, player *league.Player) error {
	return expectRows(tx.NamedExecContext(ctx, updatePlayerQuery, player))
}

// Delete removes only the player row, matches keep referencing the id.
func (s *PlayerStore) Delete(ctx context.Context, tx *sqlx.Tx, id int64) error {
	return expectRows(tx.ExecContext(ctx, deletePlayerQuery, id))
}
