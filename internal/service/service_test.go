package service

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/schedule"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	// Every connection to :memory: is a separate database
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

type testServices struct {
	players       *PlayerService
	matches       *MatchService
	seasons       *SeasonService
	schedules     *ScheduleService
	wheel         *WheelService
	games         *GameService
	activeWeek    *ActiveWeekService
	announcements *AnnouncementService
	standings     *StandingsService
	stores        *store.Stores
}

func newTestServices(db *sqlx.DB) *testServices {
	stores := store.New(db)
	wheel := schedule.NewWheel(rand.NewPCG(7, 11))
	players := NewPlayerService(db, stores)
	return &testServices{
		players:       players,
		matches:       NewMatchService(db, stores, players),
		seasons:       NewSeasonService(db, stores),
		schedules:     NewScheduleService(db, stores),
		wheel:         NewWheelService(db, stores, wheel),
		games:         NewGameService(db, stores, wheel),
		activeWeek:    NewActiveWeekService(db, stores),
		announcements: NewAnnouncementService(db, stores),
		standings:     NewStandingsService(stores),
		stores:        stores,
	}
}

func createPlayers(t *testing.T, svc *testServices, names ...string) []league.Player {
	t.Helper()

	players := make([]league.Player, 0, len(names))
	for _, name := range names {
		p, err := svc.players.Create(context.Background(), name)
		require.NoError(t, err)
		players = append(players, *p)
	}
	return players
}
