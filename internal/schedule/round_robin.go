package schedule

import (
	"errors"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
)

var (
	ErrInvalidRosterSize = errors.New("at least 2 players are needed to generate a schedule")
	ErrInvalidWeekCount  = errors.New("the season needs at least 1 week")
	ErrDuplicatePlayer   = errors.New("a player appears more than once in the roster")
)

// byeSlot pads odd rosters. Player ids are always positive so it can't collide.
const byeSlot int64 = -1

// GenerateSeasonSchedule pairs the roster for every week of a season with the
// circle method. Position 0 of the roster stays fixed while everyone else
// rotates one slot per week, so each pair meets once every len(pool)-1 weeks.
// Seasons longer than that keep rotating and repeat pairings.
//
// Odd rosters get padded with a bye slot. Whoever draws the bye sits the week
// out and no match is emitted for them.
//
// The output is deterministic for a given roster order and is not persisted.
func GenerateSeasonSchedule(players []int64, weeksInSeason int, seasonID *uuid.UUID) ([]league.Match, error) {
	if len(players) < 2 {
		return nil, ErrInvalidRosterSize
	}
	if weeksInSeason < 1 {
		return nil, ErrInvalidWeekCount
	}

	seen := make(map[int64]bool, len(players))
	for _, p := range players {
		if seen[p] {
			return nil, ErrDuplicatePlayer
		}
		seen[p] = true
	}

	pool := make([]int64, len(players), len(players)+1)
	copy(pool, players)
	if len(pool)%2 != 0 {
		pool = append(pool, byeSlot)
	}

	n := len(pool)
	matches := make([]league.Match, 0, weeksInSeason*n/2)
	for round := range weeksInSeason {
		for i := range n / 2 {
			p1 := pool[circleIndex(i, n, round)]
			p2 := pool[circleIndex(n-1-i, n, round)]
			if p1 == byeSlot || p2 == byeSlot {
				continue
			}

			opponent := p2
			matches = append(matches, league.Match{
				Week:      round + 1,
				SeasonID:  seasonID,
				Player1ID: p1,
				Player2ID: &opponent,
				Status:    league.MatchScheduled,
				Played:    false,
			})
		}
	}

	return matches, nil
}

// Maps a position to the roster index occupying it in the given round.
// Rotates according to https://en.wikipedia.org/wiki/Round-robin_tournament#Circle_method
// where every round the last element moves to position 1 and the rest
// (except position 0) shift right by one.
func circleIndex(position, length, round int) int {
	if position == 0 {
		return 0
	}
	cycle := length - 1
	index := position - 1
	index -= round % cycle
	index += cycle
	index %= cycle
	return index + 1
}
