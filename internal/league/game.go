package league

import (
	"time"

	"github.com/google/uuid"
)

type Game struct {
	ID             int64      `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Category       *string    `db:"category" json:"category,omitempty"`
	IsChosen       bool       `db:"is_chosen" json:"isChosen"`
	AssignedWeek   *int       `db:"assigned_week" json:"assignedWeek,omitempty"`
	AssignedSeason *uuid.UUID `db:"assigned_season" json:"assignedSeason,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}
