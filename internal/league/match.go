package league

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchCompleted MatchStatus = "completed"
	MatchSkipped   MatchStatus = "skipped"
	MatchDQ        MatchStatus = "dq"
)

type Match struct {
	ID   int64 `db:"id" json:"id"`
	Week int   `db:"week" json:"week"`

	// Nil for matches recorded before seasons existed
	SeasonID *uuid.UUID `db:"season_id" json:"seasonId,omitempty"`

	Player1ID int64  `db:"player_1_id" json:"player1Id"`
	Player2ID *int64 `db:"player_2_id" json:"player2Id,omitempty"`
	IsBye     bool   `db:"is_bye" json:"isBye"`

	WinnerID   *int64      `db:"winner_id" json:"winnerId,omitempty"`
	LoserID    *int64      `db:"loser_id" json:"loserId,omitempty"`
	DQPlayerID *int64      `db:"dq_player_id" json:"dqPlayerId,omitempty"`
	Status     MatchStatus `db:"status" json:"status"`
	Played     bool        `db:"played" json:"played"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Involves reports whether the player is one of the two sides of the match.
func (m *Match) Involves(playerID int64) bool {
	if m.Player1ID == playerID {
		return true
	}
	return m.Player2ID != nil && *m.Player2ID == playerID
}

// Opponent returns the other side of the match, false for byes or
// when the player is not part of the match.
func (m *Match) Opponent(playerID int64) (int64, bool) {
	if m.IsBye || m.Player2ID == nil {
		return 0, false
	}
	switch playerID {
	case m.Player1ID:
		return *m.Player2ID, true
	case *m.Player2ID:
		return m.Player1ID, true
	}
	return 0, false
}

// Participants lists the real players of the match, one entry for byes.
func (m *Match) Participants() []int64 {
	if m.Player2ID == nil {
		return []int64{m.Player1ID}
	}
	return []int64{m.Player1ID, *m.Player2ID}
}

func (m *Match) IsResolved() bool {
	return m.Status != MatchScheduled
}
