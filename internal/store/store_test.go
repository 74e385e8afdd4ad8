package store

import (
	"context"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/utils"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
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

func inTx(t *testing.T, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	t.Helper()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func createSeason(t *testing.T, db *sqlx.DB, name string, weeks int) league.Season {
	t.Helper()

	season := league.Season{ID: uuid.New(), Name: name, Weeks: weeks, Status: league.SeasonDraft}
	err := inTx(t, db, func(tx *sqlx.Tx) error {
		return NewSeasonStore(db).Create(context.Background(), tx, &season)
	})
	require.NoError(t, err)
	return season
}

func TestPlayerStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewPlayerStore(db)

	mario := league.Player{Name: "Mario", Wins: 2, Losses: 1, Points: 5}
	luigi := league.Player{Name: "Luigi"}
	err := inTx(t, db, func(tx *sqlx.Tx) error {
		if err := store.Create(ctx, tx, &mario); err != nil {
			return err
		}
		return store.Create(ctx, tx, &luigi)
	})
	require.NoError(t, err)
	assert.NotZero(t, mario.ID)
	assert.Greater(t, luigi.ID, mario.ID)
	assert.False(t, mario.CreatedAt.IsZero())

	fetched, err := store.Get(ctx, mario.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mario", fetched.Name)
	assert.Equal(t, 2, fetched.Wins)
	assert.Equal(t, 1, fetched.Losses)
	assert.Equal(t, 5, fetched.Points)

	players, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Mario", players[0].Name)
	assert.Equal(t, "Luigi", players[1].Name)

	luigi.Name = "Weegee"
	luigi.NotPlayed = 3
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Update(ctx, tx, &luigi) }))

	fetched, err = store.Get(ctx, luigi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weegee", fetched.Name)
	assert.Equal(t, 3, fetched.NotPlayed)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Delete(ctx, tx, mario.ID) }))

	_, err = store.Get(ctx, mario.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = inTx(t, db, func(tx *sqlx.Tx) error { return store.Delete(ctx, tx, mario.ID) })
	assert.ErrorIs(t, err, ErrNotFound)

	ghost := league.Player{ID: 999, Name: "Ghost"}
	err = inTx(t, db, func(tx *sqlx.Tx) error { return store.Update(ctx, tx, &ghost) })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatchStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMatchStore(db)
	season := createSeason(t, db, "Spring", 4)

	matches := []league.Match{
		{Week: 1, SeasonID: &season.ID, Player1ID: 1, Player2ID: utils.Ptr(int64(2)), Status: league.MatchScheduled},
		{Week: 1, SeasonID: &season.ID, Player1ID: 3, IsBye: true, Status: league.MatchScheduled},
		{Week: 2, SeasonID: &season.ID, Player1ID: 1, Player2ID: utils.Ptr(int64(3)), Status: league.MatchScheduled},
	}
	legacy := league.Match{Week: 1, Player1ID: 4, Player2ID: utils.Ptr(int64(5)), Status: league.MatchScheduled}

	err := inTx(t, db, func(tx *sqlx.Tx) error {
		if err := store.CreateMatches(ctx, tx, matches); err != nil {
			return err
		}
		return store.Create(ctx, tx, &legacy)
	})
	require.NoError(t, err)
	assert.NotZero(t, legacy.ID)

	all, err := store.List(ctx, MatchFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	seasonMatches, err := store.List(ctx, MatchFilter{SeasonID: &season.ID})
	require.NoError(t, err)
	require.Len(t, seasonMatches, 3)
	assert.True(t, seasonMatches[1].IsBye)
	assert.Nil(t, seasonMatches[1].Player2ID)
	assert.Equal(t, season.ID, *seasonMatches[0].SeasonID)

	weekOne, err := store.List(ctx, MatchFilter{SeasonID: &season.ID, Week: utils.Ptr(1)})
	require.NoError(t, err)
	assert.Len(t, weekOne, 2)

	unscoped, err := store.List(ctx, MatchFilter{Unscoped: true})
	require.NoError(t, err)
	require.Len(t, unscoped, 1)
	assert.Nil(t, unscoped[0].SeasonID)

	// Replacing a season leaves the other matches alone
	replacement := []league.Match{
		{Week: 1, SeasonID: &season.ID, Player1ID: 2, Player2ID: utils.Ptr(int64(3)), Status: league.MatchScheduled},
	}
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error {
		return store.ReplaceSeason(ctx, tx, &season.ID, replacement)
	}))

	seasonMatches, err = store.List(ctx, MatchFilter{SeasonID: &season.ID})
	require.NoError(t, err)
	require.Len(t, seasonMatches, 1)
	assert.Equal(t, int64(2), seasonMatches[0].Player1ID)

	fetched, err := store.Get(ctx, legacy.ID)
	require.NoError(t, err)
	fetched.Status = league.MatchCompleted
	fetched.Played = true
	fetched.WinnerID = utils.Ptr(int64(4))
	fetched.LoserID = utils.Ptr(int64(5))
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Update(ctx, tx, fetched) }))

	fetched, err = store.Get(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, league.MatchCompleted, fetched.Status)
	assert.True(t, fetched.Played)
	assert.Equal(t, int64(4), *fetched.WinnerID)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Delete(ctx, tx, legacy.ID) }))
	_, err = store.Get(ctx, legacy.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.DeleteAll(ctx, tx) }))
	all, err = store.List(ctx, MatchFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMatchStore_ByeNeedsNoOpponent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMatchStore(db)

	invalid := league.Match{Week: 1, Player1ID: 1, Player2ID: utils.Ptr(int64(2)), IsBye: true, Status: league.MatchScheduled}
	err := inTx(t, db, func(tx *sqlx.Tx) error { return store.Create(ctx, tx, &invalid) })
	assert.Error(t, err)
}

func TestSeasonStore_Activate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewSeasonStore(db)

	_, err := store.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	first := createSeason(t, db, "Season 1", 8)
	second := createSeason(t, db, "Season 2", 10)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Activate(ctx, tx, first.ID) }))
	active, err := store.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Activate(ctx, tx, second.ID) }))
	active, err = store.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	previous, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, league.SeasonCompleted, previous.Status)

	// Re-activating the active season is a no-op
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Activate(ctx, tx, second.ID) }))

	err = inTx(t, db, func(tx *sqlx.Tx) error { return store.Activate(ctx, tx, uuid.New()) })
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed activation rolled back, so the old season is still live
	active, err = store.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	seasons, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, seasons, 2)
}

func TestSeasonStore_SingleActiveConstraint(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewSeasonStore(db)

	first := createSeason(t, db, "Season 1", 8)
	second := createSeason(t, db, "Season 2", 8)

	first.Status = league.SeasonActive
	second.Status = league.SeasonActive
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Update(ctx, tx, &first) }))

	err := inTx(t, db, func(tx *sqlx.Tx) error { return store.Update(ctx, tx, &second) })
	assert.Error(t, err)
}

func TestActiveWeekStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewActiveWeekStore(db)

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error {
		return store.Set(ctx, tx, league.ActiveWeek{Week: 3})
	}))
	week, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, week.Week)
	assert.Nil(t, week.SeasonID)

	season := createSeason(t, db, "Summer", 6)
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error {
		return store.Set(ctx, tx, league.ActiveWeek{Week: 5, SeasonID: &season.ID})
	}))
	week, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, week.Week)
	require.NotNil(t, week.SeasonID)
	assert.Equal(t, season.ID, *week.SeasonID)
}

func TestGameStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewGameStore(db)
	season := createSeason(t, db, "Fall", 4)

	tetris := league.Game{Name: "Tetris", Category: utils.StringOrNil("Puzzle")}
	contra := league.Game{Name: "Contra", IsChosen: true, AssignedWeek: utils.Ptr(2), AssignedSeason: &season.ID}
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error {
		if err := store.Create(ctx, tx, &tetris); err != nil {
			return err
		}
		return store.Create(ctx, tx, &contra)
	}))

	games, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Contra", games[0].Name)
	assert.Equal(t, "Puzzle", *games[1].Category)
	assert.Equal(t, 2, *games[0].AssignedWeek)

	err = inTx(t, db, func(tx *sqlx.Tx) error {
		taken, err := store.NameTakenTx(ctx, tx, "tETRIS", 0)
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = store.NameTakenTx(ctx, tx, "Tetris", tetris.ID)
		require.NoError(t, err)
		assert.False(t, taken)

		taken, err = store.NameTakenTx(ctx, tx, "Galaga", 0)
		require.NoError(t, err)
		assert.False(t, taken)
		return nil
	})
	require.NoError(t, err)

	duplicate := league.Game{Name: "CONTRA"}
	err = inTx(t, db, func(tx *sqlx.Tx) error { return store.Create(ctx, tx, &duplicate) })
	assert.Error(t, err, "the unique index should reject case-insensitive duplicates")

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.ResetAll(ctx, tx) }))
	fetched, err := store.Get(ctx, contra.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsChosen)
	assert.Nil(t, fetched.AssignedWeek)
	assert.Nil(t, fetched.AssignedSeason)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Delete(ctx, tx, contra.ID) }))
	_, err = store.Get(ctx, contra.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnnouncementStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewAnnouncementStore(db)

	welcome := league.Announcement{Title: "Welcome", Body: "Season starts Friday", Active: true}
	hidden := league.Announcement{Title: "Draft", Active: false}
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error {
		if err := store.Create(ctx, tx, &welcome); err != nil {
			return err
		}
		return store.Create(ctx, tx, &hidden)
	}))

	all, err := store.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Draft", all[0].Title, "newest first")

	active, err := store.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Welcome", active[0].Title)

	hidden.Active = true
	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Update(ctx, tx, &hidden) }))
	active, err = store.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, inTx(t, db, func(tx *sqlx.Tx) error { return store.Delete(ctx, tx, welcome.ID) }))
	_, err = store.Get(ctx, welcome.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
