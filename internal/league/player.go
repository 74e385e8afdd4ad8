package league

import "time"

// Points awarded per result. Stored points are expected to follow
// wins*PointsPerWin + losses*PointsPerLoss unless an admin overrides them.
const (
	PointsPerWin  = 2
	PointsPerLoss = 1
)

type Player struct {
	ID        int64     `db:"id" json:"id" yaml:"id"`
	Name      string    `db:"name" json:"name" yaml:"name"`
	Wins      int       `db:"wins" json:"wins" yaml:"wins"`
	Losses    int       `db:"losses" json:"losses" yaml:"losses"`
	NotPlayed int       `db:"not_played" json:"notPlayed" yaml:"notPlayed"`
	Points    int       `db:"points" json:"points" yaml:"points"`
	CreatedAt time.Time `db:"created_at" json:"createdAt" yaml:"-"`
}

func ComputePoints(wins, losses int) int {
	return wins*PointsPerWin + losses*PointsPerLoss
}

// RecomputePoints overwrites the stored points with the value derived from wins and losses
func (p *Player) RecomputePoints() {
	p.Points = ComputePoints(p.Wins, p.Losses)
}
