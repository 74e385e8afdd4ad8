package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(10 * time.Second))
	r.Use(app.sessions.LoadAndSave)
	r.Use(app.auth.LoadAdmin)

	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/", app.indexPage)
	r.Get("/schedule", app.schedulePage)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", app.login)
		r.Post("/logout", app.logout)

		r.Get("/standings", app.listStandings)
		r.Get("/players", app.listPlayers)
		r.Get("/players/{id}", app.getPlayer)
		r.Get("/games", app.listGames)
		r.Get("/seasons", app.listSeasons)
		r.Get("/seasons/active", app.getActiveSeason)
		r.Get("/seasons/{id}", app.getSeason)
		r.Get("/matches", app.listMatches)
		r.Get("/active-week", app.getActiveWeek)
		r.Get("/announcements", app.listAnnouncements)
		r.Get("/wheel/candidates", app.listCandidates)

		r.Group(func(r chi.Router) {
			r.Use(app.auth.RequireAdmin)

			r.Post("/players", app.createPlayer)
			r.Put("/players/{id}", app.updatePlayer)
			r.Delete("/players/{id}", app.deletePlayer)

			r.Post("/games", app.createGame)
			r.Put("/games/{id}", app.updateGame)
			r.Delete("/games/{id}", app.deleteGame)
			r.Post("/games/spin", app.spinGame)
			r.Post("/games/reset", app.resetGames)
			r.Post("/games/{id}/return", app.returnGame)

			r.Post("/seasons", app.createSeason)
			r.Put("/seasons/{id}", app.updateSeason)
			r.Post("/seasons/{id}/activate", app.activateSeason)
			r.Post("/seasons/{id}/complete", app.completeSeason)
			r.Post("/seasons/{id}/schedule", app.generateSchedule)
			r.Delete("/seasons/{id}/schedule", app.clearSchedule)

			r.Post("/matches", app.createMatch)
			r.Post("/matches/spin", app.spinMatch)
			r.Post("/matches/{id}/result", app.applyResult)
			r.Post("/matches/{id}/reopen", app.reopenMatch)
			r.Delete("/matches/{id}", app.deleteMatch)
			r.Delete("/matches", app.deleteAllMatches)

			r.Put("/active-week", app.setActiveWeek)

			r.Post("/announcements", app.createAnnouncement)
			r.Put("/announcements/{id}", app.updateAnnouncement)
			r.Delete("/announcements/{id}", app.deleteAnnouncement)
		})
	})

	return r
}
