package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Turns a write that touched no rows into ErrNotFound
func expectRows(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Stores bundles every store over one database.
type Stores struct {
	Players       *PlayerStore
	Matches       *MatchStore
	Seasons       *SeasonStore
	Games         *GameStore
	ActiveWeek    *ActiveWeekStore
	Announcements *AnnouncementStore
}

func New(db *sqlx.DB) *Stores {
	return &Stores{
		Players:       NewPlayerStore(db),
		Matches:       NewMatchStore(db),
		Seasons:       NewSeasonStore(db),
		Games:         NewGameStore(db),
		ActiveWeek:    NewActiveWeekStore(db),
		Announcements: NewAnnouncementStore(db),
	}
}
