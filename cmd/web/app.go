package main

import (
	"math/rand/v2"

	"github.com/alexedwards/scs/v2"
	"github.com/javajohnHub/hsw/internal/config"
	"github.com/javajohnHub/hsw/internal/middleware"
	"github.com/javajohnHub/hsw/internal/schedule"
	"github.com/javajohnHub/hsw/internal/service"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/unrolled/render"
)

type application struct {
	render   *render.Render
	sessions *scs.SessionManager
	auth     *middleware.Auth

	players       *service.PlayerService
	matches       *service.MatchService
	seasons       *service.SeasonService
	schedules     *service.ScheduleService
	wheel         *service.WheelService
	games         *service.GameService
	activeWeek    *service.ActiveWeekService
	announcements *service.AnnouncementService
	standings     *service.StandingsService
}

func newApplication(database *sqlx.DB, sessions *scs.SessionManager, cfg config.Config, src rand.Source) *application {
	stores := store.New(database)
	wheel := schedule.NewWheel(src)
	players := service.NewPlayerService(database, stores)

	return &application{
		render:        render.New(render.Options{IndentJSON: true}),
		sessions:      sessions,
		auth:          middleware.NewAuth(sessions, cfg.AdminUsername, cfg.AdminPassword),
		players:       players,
		matches:       service.NewMatchService(database, stores, players),
		seasons:       service.NewSeasonService(database, stores),
		schedules:     service.NewScheduleService(database, stores),
		wheel:         service.NewWheelService(database, stores, wheel),
		games:         service.NewGameService(database, stores, wheel),
		activeWeek:    service.NewActiveWeekService(database, stores),
		announcements: service.NewAnnouncementService(database, stores),
		standings:     service.NewStandingsService(stores),
	}
}
