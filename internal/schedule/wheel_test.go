package schedule

import (
	"math/rand/v2"
	"testing"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWheel(seed uint64) *Wheel {
	return NewWheel(rand.NewPCG(seed, seed*31+7))
}

func pairing(week int, p1, p2 int64) league.Match {
	return league.Match{Week: week, Player1ID: p1, Player2ID: utils.Ptr(p2), Status: league.MatchScheduled}
}

func bye(week int, p int64) league.Match {
	return league.Match{Week: week, Player1ID: p, IsBye: true, Status: league.MatchScheduled}
}

func TestCandidates(t *testing.T) {
	testCases := []struct {
		name        string
		roster      []int64
		weekMatches []league.Match
		expected    []Candidate
	}{
		{
			name:     "empty week with even roster",
			roster:   []int64{1, 2, 3, 4},
			expected: []Candidate{{PlayerID: 1}, {PlayerID: 2}, {PlayerID: 3}, {PlayerID: 4}},
		},
		{
			name:        "odd remainder gets a bye slot",
			roster:      []int64{1, 2, 3, 4, 5},
			weekMatches: []league.Match{pairing(1, 2, 4)},
			expected:    []Candidate{{PlayerID: 1}, {PlayerID: 3}, {PlayerID: 5}, {IsBye: true}},
		},
		{
			name:        "bye recipients are matched",
			roster:      []int64{1, 2, 3},
			weekMatches: []league.Match{bye(1, 3)},
			expected:    []Candidate{{PlayerID: 1}, {PlayerID: 2}},
		},
		{
			name:        "full week",
			roster:      []int64{1, 2},
			weekMatches: []league.Match{pairing(1, 1, 2)},
			expected:    []Candidate{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Candidates(tc.roster, tc.weekMatches))
		})
	}
}

func TestSpin_NoEligibleCandidates(t *testing.T) {
	w := newTestWheel(1)

	_, err := w.Spin(1, nil, []int64{1, 2}, []league.Match{pairing(1, 1, 2)}, nil)
	assert.ErrorIs(t, err, ErrNoEligibleCandidates)

	_, err = w.Spin(1, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoEligibleCandidates)
}

func TestSpin_LastPlayerGetsTheBye(t *testing.T) {
	weekMatches := []league.Match{pairing(3, 1, 2)}

	for seed := range uint64(20) {
		match, err := newTestWheel(seed).Spin(3, nil, []int64{1, 2, 3}, weekMatches, weekMatches)
		require.NoError(t, err)
		assert.True(t, match.IsBye)
		assert.Equal(t, int64(3), match.Player1ID)
		assert.Nil(t, match.Player2ID)
		assert.Equal(t, 3, match.Week)
	}
}

func TestSpin_FillsTheWeek(t *testing.T) {
	for _, size := range []int{2, 5, 6, 7} {
		players := roster(size)
		w := newTestWheel(uint64(size))

		var weekMatches []league.Match
		for {
			match, err := w.Spin(2, nil, players, weekMatches, weekMatches)
			if err != nil {
				require.ErrorIs(t, err, ErrNoEligibleCandidates)
				break
			}
			assert.Equal(t, league.MatchScheduled, match.Status)
			weekMatches = append(weekMatches, match)
			require.LessOrEqual(t, len(weekMatches), size, "wheel kept spinning")
		}

		seen := make(map[int64]int)
		byes := 0
		for _, m := range weekMatches {
			if m.IsBye {
				byes++
			} else {
				assert.NotEqual(t, m.Player1ID, *m.Player2ID)
			}
			for _, p := range m.Participants() {
				seen[p]++
			}
		}
		assert.Len(t, seen, size)
		for p, count := range seen {
			assert.Equal(t, 1, count, "player %d matched %d times", p, count)
		}
		assert.Equal(t, size%2, byes)
	}
}

func TestPickByePlayer_StaysWithinOne(t *testing.T) {
	w := newTestWheel(42)
	players := roster(5)

	var history []league.Match
	for week := 1; week <= 20; week++ {
		p := w.PickByePlayer(players, history)
		history = append(history, bye(week, p))

		counts := ByeCounts(history)
		low, high := counts[players[0]], counts[players[0]]
		for _, id := range players {
			low = min(low, counts[id])
			high = max(high, counts[id])
		}
		require.LessOrEqual(t, high-low, 1, "bye counts drifted apart after %d byes: %v", week, counts)
	}

	for _, id := range players {
		assert.Equal(t, 4, ByeCounts(history)[id])
	}
}

func TestPickByePlayer_PrefersFewestByes(t *testing.T) {
	history := []league.Match{bye(1, 1), bye(2, 2), bye(3, 1), bye(4, 3)}

	for seed := range uint64(10) {
		p := newTestWheel(seed).PickByePlayer([]int64{1, 2, 3, 4}, history)
		assert.Equal(t, int64(4), p)
	}
}

func TestPickOpponent_PrefersUnplayed(t *testing.T) {
	history := []league.Match{
		pairing(1, 1, 2),
		pairing(2, 3, 1),
		pairing(3, 1, 4),
		pairing(3, 2, 5),
	}

	w := newTestWheel(7)
	for range 50 {
		assert.Equal(t, int64(5), w.PickOpponent(1, []int64{2, 3, 4, 5}, history))
	}
}

func TestPickOpponent_FewestMeetingsWhenAllPlayed(t *testing.T) {
	history := []league.Match{
		pairing(1, 1, 2),
		pairing(2, 1, 2),
		pairing(3, 1, 3),
		pairing(4, 4, 1),
		bye(5, 1),
	}

	w := newTestWheel(3)
	// 3 and 4 are tied, the first one listed wins
	assert.Equal(t, int64(3), w.PickOpponent(1, []int64{2, 3, 4}, history))
	assert.Equal(t, int64(4), w.PickOpponent(1, []int64{2, 4, 3}, history))
}

func TestMatchupCounts(t *testing.T) {
	history := []league.Match{
		pairing(1, 1, 2),
		pairing(2, 2, 1),
		pairing(3, 3, 4),
		bye(4, 1),
	}

	assert.Equal(t, map[int64]int{2: 2}, MatchupCounts(1, history))
	assert.Equal(t, map[int64]int{}, MatchupCounts(5, history))
}

func TestPickGame(t *testing.T) {
	w := newTestWheel(9)

	_, err := w.PickGame(nil)
	assert.ErrorIs(t, err, ErrNoGamesLeft)

	games := []league.Game{
		{ID: 1, Name: "Contra", IsChosen: true},
		{ID: 2, Name: "Tetris"},
		{ID: 3, Name: "Galaga", IsChosen: true},
	}
	game, err := w.PickGame(games)
	require.NoError(t, err)
	assert.Equal(t, "Tetris", game.Name)

	games[1].IsChosen = true
	_, err = w.PickGame(games)
	assert.ErrorIs(t, err, ErrNoGamesLeft)
}
