package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveWeekService(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := newTestServices(db)
	ctx := context.Background()

	week, err := svc.activeWeek.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, week.Week)
	assert.Nil(t, week.SeasonID)

	season, err := svc.seasons.Create(ctx, SeasonInput{Name: "Spring", Weeks: 6})
	require.NoError(t, err)

	_, err = svc.activeWeek.Set(ctx, 4, &season.ID)
	require.NoError(t, err)

	week, err = svc.activeWeek.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, week.Week)
	require.NotNil(t, week.SeasonID)
	assert.Equal(t, season.ID, *week.SeasonID)

	tests := []struct {
		name     string
		week     int
		seasonID *uuid.UUID
		wantErr  error
	}{
		{name: "week zero", week: 0, wantErr: ErrInvalidWeek},
		{name: "past season end", week: 7, seasonID: &season.ID, wantErr: ErrInvalidWeek},
		{name: "unknown season", week: 1, seasonID: new(uuid.UUID), wantErr: store.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.activeWeek.Set(ctx, tt.week, tt.seasonID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Without a season any positive week goes
	_, err = svc.activeWeek.Set(ctx, 12, nil)
	require.NoError(t, err)
	week, err = svc.activeWeek.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, week.Week)
	assert.Nil(t, week.SeasonID)
}
