package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const unknownPlayerName = "Unknown player"

type MatchService struct {
	db      *sqlx.DB
	stores  *store.Stores
	players *PlayerService
}

func NewMatchService(db *sqlx.DB, stores *store.Stores, players *PlayerService) *MatchService {
	return &MatchService{db: db, stores: stores, players: players}
}

type ResultKind string

const (
	ResultWin  ResultKind = "win"
	ResultDQ   ResultKind = "dq"
	ResultSkip ResultKind = "skip"
)

// Result is the outcome an admin records for a match. PlayerID is the
// winner for a win and the disqualified player for a dq.
type Result struct {
	Kind     ResultKind `json:"kind"`
	PlayerID int64      `json:"playerId"`
}

type MatchInput struct {
	Week      int        `json:"week"`
	SeasonID  *uuid.UUID `json:"seasonId"`
	Player1ID int64      `json:"player1Id"`
	Player2ID *int64     `json:"player2Id"`
}

// MatchDetail is a match with its player ids resolved to names.
type MatchDetail struct {
	league.Match
	Player1Name string `json:"player1Name"`
	Player2Name string `json:"player2Name,omitempty"`
	WinnerName  string `json:"winnerName,omitempty"`
}

func (s *MatchService) List(ctx context.Context, filter store.MatchFilter) ([]league.Match, error) {
	return s.stores.Matches.List(ctx, filter)
}

func (s *MatchService) Get(ctx context.Context, id int64) (*league.Match, error) {
	return s.stores.Matches.Get(ctx, id)
}

// Details resolves player names for display. Deleted players show up as unknown.
func (s *MatchService) Details(ctx context.Context, matches []league.Match) ([]MatchDetail, error) {
	players, err := s.stores.Players.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	nameOf := func(id int64) string {
		if name, ok := names[id]; ok {
			return name
		}
		return unknownPlayerName
	}

	details := make([]MatchDetail, 0, len(matches))
	for _, m := range matches {
		d := MatchDetail{Match: m, Player1Name: nameOf(m.Player1ID)}
		if m.Player2ID != nil {
			d.Player2Name = nameOf(*m.Player2ID)
		}
		if m.WinnerID != nil {
			d.WinnerName = nameOf(*m.WinnerID)
		}
		details = append(details, d)
	}
	return details, nil
}

// Create records a hand made pairing. A missing second player makes it a bye.
func (s *MatchService) Create(ctx context.Context, in MatchInput) (*league.Match, error) {
	if in.Week < 1 {
		return nil, ErrInvalidWeek
	}
	if in.Player2ID != nil && *in.Player2ID == in.Player1ID {
		return nil, ErrSamePlayer
	}
	if in.SeasonID != nil {
		season, err := s.stores.Seasons.Get(ctx, *in.SeasonID)
		if err != nil {
			return nil, err
		}
		if in.Week > season.Weeks {
			return nil, ErrInvalidWeek
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids := []int64{in.Player1ID}
	if in.Player2ID != nil {
		ids = append(ids, *in.Player2ID)
	}
	for _, id := range ids {
		if _, err := s.stores.Players.GetTx(ctx, tx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUnknownPlayer
			}
			return nil, err
		}
	}

	match := &league.Match{
		Week:      in.Week,
		SeasonID:  in.SeasonID,
		Player1ID: in.Player1ID,
		Player2ID: in.Player2ID,
		IsBye:     in.Player2ID == nil,
		Status:    league.MatchScheduled,
	}
	if err := s.stores.Matches.Create(ctx, tx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, tx.Commit()
}

// ApplyResult settles a scheduled match and updates both players' records.
func (s *MatchService) ApplyResult(ctx context.Context, matchID int64, result Result) (*league.Match, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	match, err := s.stores.Matches.GetTx(ctx, tx, matchID)
	if err != nil {
		return nil, err
	}
	if match.IsResolved() {
		return nil, ErrMatchResolved
	}

	switch result.Kind {
	case ResultWin, ResultDQ:
		if match.IsBye {
			return nil, ErrByeMatch
		}
		if !match.Involves(result.PlayerID) {
			return nil, ErrNotParticipant
		}
		other, _ := match.Opponent(result.PlayerID)
		named := result.PlayerID

		if result.Kind == ResultWin {
			match.Status = league.MatchCompleted
			match.WinnerID = &named
			match.LoserID = &other
			err = s.players.adjust(ctx, tx, named, func(p *league.Player) { p.Wins++ })
			if err == nil {
				err = s.players.adjust(ctx, tx, other, func(p *league.Player) { p.Losses++ })
			}
		} else {
			match.Status = league.MatchDQ
			match.DQPlayerID = &named
			match.WinnerID = &other
			err = s.players.adjust(ctx, tx, other, func(p *league.Player) { p.Wins++ })
			if err == nil {
				err = s.players.adjust(ctx, tx, named, func(p *league.Player) { p.NotPlayed++ })
			}
		}
		if err != nil {
			return nil, err
		}
		match.Played = true

	case ResultSkip:
		match.Status = league.MatchSkipped
		match.Played = false
		if !match.IsBye {
			for _, id := range match.Participants() {
				if err := s.players.adjust(ctx, tx, id, func(p *league.Player) { p.NotPlayed++ }); err != nil {
					return nil, err
				}
			}
		}

	default:
		return nil, ErrInvalidResult
	}

	if err := s.stores.Matches.Update(ctx, tx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	logrus.WithFields(logrus.Fields{"match_id": matchID, "result": result.Kind, "player_id": result.PlayerID}).Info("match result recorded")
	return match, tx.Commit()
}

// Reopen undoes the recorded result and puts the match back on the schedule.
func (s *MatchService) Reopen(ctx context.Context, matchID int64) (*league.Match, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	match, err := s.stores.Matches.GetTx(ctx, tx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsResolved() {
		return nil, ErrMatchNotResolved
	}

	type change struct {
		id int64
		fn func(p *league.Player)
	}
	var changes []change
	switch match.Status {
	case league.MatchCompleted:
		if match.WinnerID != nil {
			changes = append(changes, change{*match.WinnerID, func(p *league.Player) { p.Wins-- }})
		}
		if match.LoserID != nil {
			changes = append(changes, change{*match.LoserID, func(p *league.Player) { p.Losses-- }})
		}
	case league.MatchDQ:
		if match.WinnerID != nil {
			changes = append(changes, change{*match.WinnerID, func(p *league.Player) { p.Wins-- }})
		}
		if match.DQPlayerID != nil {
			changes = append(changes, change{*match.DQPlayerID, func(p *league.Player) { p.NotPlayed-- }})
		}
	case league.MatchSkipped:
		if !match.IsBye {
			for _, id := range match.Participants() {
				changes = append(changes, change{id, func(p *league.Player) { p.NotPlayed-- }})
			}
		}
	}

	for _, c := range changes {
		err := s.players.adjust(ctx, tx, c.id, c.fn)
		// Players deleted since the result was recorded have nothing left to undo
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	match.Status = league.MatchScheduled
	match.Played = false
	match.WinnerID = nil
	match.LoserID = nil
	match.DQPlayerID = nil

	if err := s.stores.Matches.Update(ctx, tx, match); err != nil {
		return nil, fmt.Errorf("failed to reopen match: %w", err)
	}
	return match, tx.Commit()
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Matches.Delete(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteAll wipes every match of every season. Player records are left alone.
func (s *MatchService) DeleteAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Matches.DeleteAll(ctx, tx); err != nil {
		return err
	}

	logrus.Warn("all matches deleted")
	return tx.Commit()
}
