package standings

import (
	"cmp"
	"slices"

	"github.com/javajohnHub/hsw/internal/league"
)

type Standing struct {
	league.Player `yaml:",inline"`
	Rank int `json:"rank" yaml:"rank"`
}

// Rank orders players for the leaderboard and numbers them with competition
// ranking: players with equal points, wins and losses share a rank and the
// following rank skips the tied positions.
//
// Sort priority is more points, more wins, fewer losses, then name ascending.
// Stored points are used as-is. The input slice is left untouched.
func Rank(players []league.Player) []Standing {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, compare)

	ranked := make([]Standing, 0, len(sorted))
	for i, p := range sorted {
		rank := i + 1
		if i > 0 && tied(sorted[i-1], p) {
			rank = ranked[i-1].Rank
		}
		ranked = append(ranked, Standing{Player: p, Rank: rank})
	}
	return ranked
}

func compare(a, b league.Player) int {
	return cmp.Or(
		cmp.Compare(b.Points, a.Points),
		cmp.Compare(b.Wins, a.Wins),
		cmp.Compare(a.Losses, b.Losses),
		cmp.Compare(a.Name, b.Name),
	)
}

// Names only decide the order inside a tie, never the rank
func tied(a, b league.Player) bool {
	return a.Points == b.Points && a.Wins == b.Wins && a.Losses == b.Losses
}
