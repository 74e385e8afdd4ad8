package views

import (
	"context"
	"fmt"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/middleware"
	"github.com/javajohnHub/hsw/internal/service"
)

func IsAdmin(ctx context.Context) bool {
	return middleware.IsAdmin(ctx)
}

// Record formats a player's line as wins-losses.
func Record(p league.Player) string {
	return fmt.Sprintf("%d-%d", p.Wins, p.Losses)
}

// Outcome describes how a match ended for the schedule tables.
func Outcome(m service.MatchDetail) string {
	switch m.Status {
	case league.MatchCompleted:
		return m.WinnerName + " won"
	case league.MatchDQ:
		return m.WinnerName + " by DQ"
	case league.MatchSkipped:
		return "Skipped"
	}
	if m.IsBye {
		return "Bye"
	}
	return "Scheduled"
}
