package league

import (
	"time"

	"github.com/google/uuid"
)

type SeasonStatus string

const (
	SeasonDraft     SeasonStatus = "draft"
	SeasonActive    SeasonStatus = "active"
	SeasonCompleted SeasonStatus = "completed"
)

type Season struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Weeks     int          `db:"weeks" json:"weeks"`
	Status    SeasonStatus `db:"status" json:"status"`
	StartDate *time.Time   `db:"start_date" json:"startDate,omitempty"`
	EndDate   *time.Time   `db:"end_date" json:"endDate,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}

// ActiveWeek is the week currently featured by the public schedule and the wheel.
type ActiveWeek struct {
	Week     int        `db:"week" json:"week"`
	SeasonID *uuid.UUID `db:"season_id" json:"seasonId,omitempty"`
}
