package schedule

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
)

var (
	ErrNoEligibleCandidates = errors.New("all players matched for this week")
	ErrNoGamesLeft          = errors.New("every game has already been chosen")
)

// Candidate is one slot on the wheel. The bye slot has no player.
type Candidate struct {
	PlayerID int64 `json:"playerId,omitempty" yaml:"playerId,omitempty"`
	IsBye    bool  `json:"isBye" yaml:"isBye"`
}

// Wheel makes the randomised picks for live weeks. It is safe for concurrent use.
type Wheel struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewWheel(src rand.Source) *Wheel {
	return &Wheel{rng: rand.New(src)}
}

func (w *Wheel) intN(n int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rng.IntN(n)
}

// Candidates returns the roster members without a match in the given week,
// in roster order. A bye slot is appended when the remaining count is odd.
func Candidates(roster []int64, weekMatches []league.Match) []Candidate {
	matched := make(map[int64]bool)
	for _, m := range weekMatches {
		for _, p := range m.Participants() {
			matched[p] = true
		}
	}

	pool := make([]Candidate, 0, len(roster)+1)
	for _, p := range roster {
		if !matched[p] {
			pool = append(pool, Candidate{PlayerID: p})
		}
	}
	if len(pool)%2 != 0 {
		pool = append(pool, Candidate{IsBye: true})
	}
	return pool
}

// Spin lands on a random candidate of the week and builds the next match for it.
//
// Landing on the bye slot hands the bye to whoever has had the fewest byes so far.
// Landing on a player pairs them with someone they have not faced yet if possible,
// otherwise with the candidate they have faced the least.
// The returned match is not persisted.
func (w *Wheel) Spin(week int, seasonID *uuid.UUID, roster []int64, weekMatches, allMatches []league.Match) (league.Match, error) {
	pool := Candidates(roster, weekMatches)
	if len(pool) < 2 {
		return league.Match{}, ErrNoEligibleCandidates
	}

	available := make([]int64, 0, len(pool))
	for _, c := range pool {
		if !c.IsBye {
			available = append(available, c.PlayerID)
		}
	}

	landed := pool[w.intN(len(pool))]
	if landed.IsBye {
		return newByeMatch(week, seasonID, w.PickByePlayer(available, allMatches)), nil
	}

	opponents := make([]int64, 0, len(available)-1)
	for _, p := range available {
		if p != landed.PlayerID {
			opponents = append(opponents, p)
		}
	}
	if len(opponents) == 0 {
		return newByeMatch(week, seasonID, landed.PlayerID), nil
	}

	opponent := w.PickOpponent(landed.PlayerID, opponents, allMatches)
	return league.Match{
		Week:      week,
		SeasonID:  seasonID,
		Player1ID: landed.PlayerID,
		Player2ID: &opponent,
		Status:    league.MatchScheduled,
	}, nil
}

func newByeMatch(week int, seasonID *uuid.UUID, playerID int64) league.Match {
	return league.Match{
		Week:      week,
		SeasonID:  seasonID,
		Player1ID: playerID,
		IsBye:     true,
		Status:    league.MatchScheduled,
	}
}

// ByeCounts tallies how many byes each player has received.
func ByeCounts(matches []league.Match) map[int64]int {
	counts := make(map[int64]int)
	for _, m := range matches {
		if m.IsBye {
			counts[m.Player1ID]++
		}
	}
	return counts
}

// MatchupCounts tallies how often the player has been paired with each opponent.
func MatchupCounts(playerID int64, matches []league.Match) map[int64]int {
	counts := make(map[int64]int)
	for _, m := range matches {
		if opponent, ok := m.Opponent(playerID); ok {
			counts[opponent]++
		}
	}
	return counts
}

// PickByePlayer chooses among the available players with the fewest byes,
// uniformly at random. available must not be empty.
func (w *Wheel) PickByePlayer(available []int64, matches []league.Match) int64 {
	counts := ByeCounts(matches)

	var fewest []int64
	for _, p := range available {
		switch {
		case len(fewest) == 0 || counts[p] < counts[fewest[0]]:
			fewest = []int64{p}
		case counts[p] == counts[fewest[0]]:
			fewest = append(fewest, p)
		}
	}
	return fewest[w.intN(len(fewest))]
}

// PickOpponent chooses uniformly among candidates the player has never faced.
// When every candidate has been faced, the first one with the fewest meetings wins.
// candidates must not be empty.
func (w *Wheel) PickOpponent(playerID int64, candidates []int64, matches []league.Match) int64 {
	counts := MatchupCounts(playerID, matches)

	var unplayed []int64
	for _, c := range candidates {
		if counts[c] == 0 {
			unplayed = append(unplayed, c)
		}
	}
	if len(unplayed) > 0 {
		return unplayed[w.intN(len(unplayed))]
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if counts[c] < counts[best] {
			best = c
		}
	}
	return best
}

// PickGame draws a random game that has not been chosen yet.
func (w *Wheel) PickGame(games []league.Game) (league.Game, error) {
	var open []league.Game
	for _, g := range games {
		if !g.IsChosen {
			open = append(open, g)
		}
	}
	if len(open) == 0 {
		return league.Game{}, ErrNoGamesLeft
	}
	return open[w.intN(len(open))], nil
}
