package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/jmoiron/sqlx"
)

type MatchStore struct {
	db *sqlx.DB
}

const (
	getMatchQuery    = "SELECT * FROM matches WHERE id = ?"
	createMatchQuery = `
		INSERT INTO matches (week, season_id, player_1_id, player_2_id, is_bye, winner_id, loser_id, dq_player_id, status, played)
		VALUES (:week, :season_id, :player_1_id, :player_2_id, :is_bye, :winner_id, :loser_id, :dq_player_id, :status, :played)
	`
	updateMatchQuery = `
		UPDATE matches SET
		week = :week,
		season_id = :season_id,
		player_1_id = :player_1_id,
		player_2_id = :player_2_id,
		is_bye = :is_bye,
		winner_id = :winner_id,
		loser_id = :loser_id,
		dq_player_id = :dq_player_id,
		status = :status,
		played = :played
		WHERE id = :id
	`
	deleteMatchQuery = "DELETE FROM matches WHERE id = ?"
)

// MatchFilter narrows List. A nil SeasonID matches every season unless
// Unscoped is set, in which case only matches without a season are returned.
type MatchFilter struct {
	SeasonID *uuid.UUID
	Unscoped bool
	Week     *int
}

func (f MatchFilter) where() (string, []any) {
	var conds []string
	var args []any
	switch {
	case f.SeasonID != nil:
		conds = append(conds, "season_id = ?")
		args = append(args, *f.SeasonID)
	case f.Unscoped:
		conds = append(conds, "season_id IS NULL")
	}
	if f.Week != nil {
		conds = append(conds, "week = ?")
		args = append(args, *f.Week)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) List(ctx context.Context, filter MatchFilter) ([]league.Match, error) {
	where, args := filter.where()
	matches := []league.Match{}
	err := s.db.SelectContext(ctx, &matches, "SELECT * FROM matches"+where+" ORDER BY week ASC, id ASC", args...)
	return matches, err
}

func (s *MatchStore) Get(ctx context.Context, id int64) (*league.Match, error) {
	var match league.Match
	if err := s.db.GetContext(ctx, &match, getMatchQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &match, nil
}

func (s *MatchStore) GetTx(ctx context.Context, tx *sqlx.Tx, id int64) (*league.Match, error) {
	var match league.Match
	if err := tx.GetContext(ctx, &match, getMatchQuery, id); err != nil {
		return nil, notFound(err)
	}
	return &match, nil
}

// Create appends a single match and fills in its id.
func (s *MatchStore) Create(ctx context.Context, tx *sqlx.Tx, match *league.Match) error {
	res, err := tx.NamedExecContext(ctx, createMatchQuery, match)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return tx.GetContext(ctx, match, getMatchQuery, id)
}

func (s *MatchStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []league.Match) error {
	if len(matches) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, createMatchQuery, matches)
	return err
}

// ReplaceSeason swaps out every match of a season (or of the unscoped
// matches when seasonID is nil) for the given ones.
func (s *MatchStore) ReplaceSeason(ctx context.Context, tx *sqlx.Tx, seasonID *uuid.UUID, matches []league.Match) error {
	if err := s.DeleteSeason(ctx, tx, seasonID); err != nil {
		return err
	}
	return s.CreateMatches(ctx, tx, matches)
}

func (s *MatchStore) DeleteSeason(ctx context.Context, tx *sqlx.Tx, seasonID *uuid.UUID) error {
	var err error
	if seasonID == nil {
		_, err = tx.ExecContext(ctx, "DELETE FROM matches WHERE season_id IS NULL")
	} else {
		_, err = tx.ExecContext(ctx, "DELETE FROM matches WHERE season_id = ?", *seasonID)
	}
	return err
}

func (s *MatchStore) Update(ctx context.Context, tx *sqlx.Tx, match *league.Match) error {
	return expectRows(tx.NamedExecContext(ctx, updateMatchQuery, match))
}

func (s *MatchStore) Delete(ctx context.Context, tx *sqlx.Tx, id int64) error {
	return expectRows(tx.ExecContext(ctx, deleteMatchQuery, id))
}

func (s *MatchStore) DeleteAll(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM matches")
	return err
}
