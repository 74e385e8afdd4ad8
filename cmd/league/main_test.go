package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/javajohnHub/hsw/internal/db"
	"github.com/javajohnHub/hsw/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"league"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "league.db")
	global := []string{"--db", dbPath, "--migrations", "file://../../migrations"}

	_, err := runApp(t, append(global, "migrate")...)
	require.NoError(t, err)

	database, err := db.InitDB(dbPath)
	require.NoError(t, err)
	svc := newServices(database)

	ctx := context.Background()
	for _, name := range []string{"Mario", "Luigi", "Peach"} {
		_, err := svc.players.Create(ctx, name)
		require.NoError(t, err)
	}
	season, err := svc.seasons.Create(ctx, service.SeasonInput{Name: "Spring", Weeks: 3})
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	// No active season and no --season flag
	_, err = runApp(t, append(global, "schedule", "export")...)
	assert.ErrorIs(t, err, service.ErrNoActiveSeason)

	out, err := runApp(t, append(global, "schedule", "generate", "--season", season.ID.String(), "--dry-run")...)
	require.NoError(t, err)
	var preview scheduleExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &preview))
	assert.Len(t, preview.Weeks, 3)

	out, err = runApp(t, append(global, "schedule", "export", "--season", season.ID.String())...)
	require.NoError(t, err)
	var empty scheduleExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &empty))
	assert.Empty(t, empty.Weeks, "dry run must not save")

	_, err = runApp(t, append(global, "schedule", "generate", "--season", season.ID.String())...)
	require.NoError(t, err)

	out, err = runApp(t, append(global, "schedule", "export", "--season", season.ID.String(), "--week", "2")...)
	require.NoError(t, err)
	var week2 scheduleExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &week2))
	require.Len(t, week2.Weeks, 1)
	assert.Equal(t, 2, week2.Weeks[0].Week)
	assert.Len(t, week2.Weeks[0].Matches, 1)

	_, err = runApp(t, append(global, "schedule", "export", "--season", season.ID.String(), "--week", "9")...)
	assert.Error(t, err)

	out, err = runApp(t, append(global, "standings")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Mario")

	_, err = runApp(t, append(global, "standings", "--format", "csv")...)
	assert.Error(t, err)
}
