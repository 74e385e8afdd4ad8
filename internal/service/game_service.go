package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/schedule"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/javajohnHub/hsw/internal/utils"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type GameService struct {
	db     *sqlx.DB
	stores *store.Stores
	wheel  *schedule.Wheel
}

func NewGameService(db *sqlx.DB, stores *store.Stores, wheel *schedule.Wheel) *GameService {
	return &GameService{db: db, stores: stores, wheel: wheel}
}

type GameInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (s *GameService) List(ctx context.Context) ([]league.Game, error) {
	return s.stores.Games.List(ctx)
}

func (s *GameService) Get(ctx context.Context, id int64) (*league.Game, error) {
	return s.stores.Games.Get(ctx, id)
}

func (s *GameService) Create(ctx context.Context, in GameInput) (*league.Game, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	taken, err := s.stores.Games.NameTakenTx(ctx, tx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check game name: %w", err)
	}
	if taken {
		return nil, ErrDuplicateGame
	}

	game := &league.Game{
		Name:     name,
		Category: utils.StringOrNil(in.Category),
	}
	if err := s.stores.Games.Create(ctx, tx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, tx.Commit()
}

func (s *GameService) Update(ctx context.Context, id int64, in GameInput) (*league.Game, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	game, err := s.stores.Games.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	taken, err := s.stores.Games.NameTakenTx(ctx, tx, name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check game name: %w", err)
	}
	if taken {
		return nil, ErrDuplicateGame
	}

	game.Name = name
	game.Category = utils.StringOrNil(in.Category)
	if err := s.stores.Games.Update(ctx, tx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, tx.Commit()
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Games.Delete(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Spin draws one of the games still on the wheel and assigns it to the week.
func (s *GameService) Spin(ctx context.Context, week int, seasonID *uuid.UUID) (*league.Game, error) {
	if week < 1 {
		return nil, ErrInvalidWeek
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if seasonID != nil {
		season, err := s.stores.Seasons.GetTx(ctx, tx, *seasonID)
		if err != nil {
			return nil, err
		}
		if week > season.Weeks {
			return nil, ErrInvalidWeek
		}
	}

	games, err := s.stores.Games.ListTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	game, err := s.wheel.PickGame(games)
	if err != nil {
		return nil, err
	}

	game.IsChosen = true
	game.AssignedWeek = &week
	game.AssignedSeason = seasonID
	if err := s.stores.Games.Update(ctx, tx, &game); err != nil {
		return nil, fmt.Errorf("failed to assign game: %w", err)
	}

	logrus.WithFields(logrus.Fields{"game": game.Name, "week": week, "season_id": seasonID}).Info("game wheel spun")
	return &game, tx.Commit()
}

// Return puts a chosen game back on the wheel.
func (s *GameService) Return(ctx context.Context, id int64) (*league.Game, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	game, err := s.stores.Games.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	game.IsChosen = false
	game.AssignedWeek = nil
	game.AssignedSeason = nil
	if err := s.stores.Games.Update(ctx, tx, game); err != nil {
		return nil, fmt.Errorf("failed to return game: %w", err)
	}
	return game, tx.Commit()
}

func (s *GameService) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Games.ResetAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to reset games: %w", err)
	}
	return tx.Commit()
}
