package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PlayerService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewPlayerService(db *sqlx.DB, stores *store.Stores) *PlayerService {
	return &PlayerService{db: db, stores: stores}
}

// PlayerUpdate is a direct admin edit. Nil fields are left alone.
// When Points is nil and wins or losses change, points are recomputed;
// an explicit Points value is stored verbatim as a manual correction.
type PlayerUpdate struct {
	Name      *string `json:"name"`
	Wins      *int    `json:"wins"`
	Losses    *int    `json:"losses"`
	NotPlayed *int    `json:"notPlayed"`
	Points    *int    `json:"points"`
}

func (s *PlayerService) List(ctx context.Context) ([]league.Player, error) {
	return s.stores.Players.List(ctx)
}

func (s *PlayerService) Get(ctx context.Context, id int64) (*league.Player, error) {
	return s.stores.Players.Get(ctx, id)
}

func (s *PlayerService) Create(ctx context.Context, name string) (*league.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	player := &league.Player{Name: name}
	if err := s.stores.Players.Create(ctx, tx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logrus.WithFields(logrus.Fields{"player_id": player.ID, "name": player.Name}).Info("player created")
	return player, tx.Commit()
}

func (s *PlayerService) Update(ctx context.Context, id int64, update PlayerUpdate) (*league.Player, error) {
	for _, v := range []*int{update.Wins, update.Losses, update.NotPlayed, update.Points} {
		if v != nil && *v < 0 {
			return nil, ErrNegativeStatistic
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	player, err := s.stores.Players.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		player.Name = name
	}
	if update.Wins != nil {
		player.Wins = *update.Wins
	}
	if update.Losses != nil {
		player.Losses = *update.Losses
	}
	if update.NotPlayed != nil {
		player.NotPlayed = *update.NotPlayed
	}

	switch {
	case update.Points != nil:
		player.Points = *update.Points
	case update.Wins != nil || update.Losses != nil:
		player.RecomputePoints()
	}

	if err := s.stores.Players.Update(ctx, tx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, tx.Commit()
}

// Delete removes the player. Their matches stay and show up as an unknown player.
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Players.Delete(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PlayerService) adjust(ctx context.Context, tx *sqlx.Tx, id int64, change func(p *league.Player)) error {
	player, err := s.stores.Players.GetTx(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("failed to get player %d: %w", id, err)
	}

	change(player)
	player.Wins = max(player.Wins, 0)
	player.Losses = max(player.Losses, 0)
	player.NotPlayed = max(player.NotPlayed, 0)
	player.RecomputePoints()

	if err := s.stores.Players.Update(ctx, tx, player); err != nil {
		return fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return nil
}
