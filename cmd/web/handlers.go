package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/httputil"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/middleware"
	"github.com/javajohnHub/hsw/internal/service"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/javajohnHub/hsw/internal/utils"
	"github.com/javajohnHub/hsw/views"
)

var errBadID = errors.New("invalid id")

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func intParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

func seasonParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errBadID
	}
	return id, nil
}

// matchFilter reads ?season=<id|none>&week=N. Without a season every season is listed.
func matchFilter(r *http.Request) (store.MatchFilter, error) {
	var filter store.MatchFilter
	q := r.URL.Query()

	switch season := q.Get("season"); season {
	case "":
	case "none":
		filter.Unscoped = true
	default:
		id, err := uuid.Parse(season)
		if err != nil {
			return filter, errors.New("invalid season")
		}
		filter.SeasonID = &id
	}

	if w := q.Get("week"); w != "" {
		week, err := strconv.Atoi(w)
		if err != nil || week < 1 {
			return filter, errors.New("invalid week")
		}
		filter.Week = &week
	}
	return filter, nil
}

// weekScope resolves the week a wheel request is about. A missing week
// means the active week, together with its season if none was given.
func (app *application) weekScope(ctx context.Context, week int, seasonID *uuid.UUID) (int, *uuid.UUID, error) {
	if week != 0 {
		return week, seasonID, nil
	}
	active, err := app.activeWeek.Get(ctx)
	if err != nil {
		return 0, nil, err
	}
	if seasonID == nil {
		seasonID = active.SeasonID
	}
	return active.Week, seasonID, nil
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &creds); err != nil {
		httputil.BadRequest(w, app.render, "Invalid login payload", err)
		return
	}
	if err := app.auth.Login(r.Context(), creds.Username, creds.Password); err != nil {
		if errors.Is(err, middleware.ErrInvalidCredentials) {
			httputil.Unauthorized(w, app.render, err.Error())
			return
		}
		httputil.InternalServerError(w, app.render, "Failed to log in", err)
		return
	}
	app.render.JSON(w, http.StatusOK, map[string]bool{"admin": true})
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	if err := app.auth.Logout(r.Context()); err != nil {
		httputil.InternalServerError(w, app.render, "Failed to log out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) indexPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	table, err := app.standings.Standings(ctx)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get standings", err)
		return
	}
	active, err := app.activeWeek.Get(ctx)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get active week", err)
		return
	}

	season, err := app.displaySeason(ctx, active.SeasonID)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get season", err)
		return
	}

	filter := store.MatchFilter{SeasonID: active.SeasonID, Unscoped: active.SeasonID == nil, Week: &active.Week}
	details, err := app.matchDetails(ctx, filter)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get matches", err)
		return
	}

	announcements, err := app.announcements.List(ctx, true)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get announcements", err)
		return
	}

	data := views.IndexData{
		Standings:     table,
		Season:        season,
		Schedule:      views.PrepareScheduleData(details, active.Week),
		Announcements: announcements,
	}
	if err := views.Render(w, r, views.Index(data)); err != nil {
		httputil.InternalServerError(w, app.render, "Failed to render index", err)
	}
}

func (app *application) schedulePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	active, err := app.activeWeek.Get(ctx)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get active week", err)
		return
	}

	seasonID := active.SeasonID
	if s := r.URL.Query().Get("season"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			httputil.BadRequest(w, app.render, "Invalid season", err)
			return
		}
		seasonID = &id
	}

	season, err := app.displaySeason(ctx, seasonID)
	if err != nil {
		httputil.Error(w, app.render, "Failed to get season", err)
		return
	}

	details, err := app.matchDetails(ctx, store.MatchFilter{SeasonID: seasonID, Unscoped: seasonID == nil})
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get matches", err)
		return
	}

	title := "Schedule"
	if season != nil {
		title = season.Name + " schedule"
	}
	if err := views.Render(w, r, views.SchedulePage(title, views.PrepareScheduleData(details, active.Week))); err != nil {
		httputil.InternalServerError(w, app.render, "Failed to render schedule", err)
	}
}

// displaySeason returns the given season, or the active one when none is given.
// Having no season at all is not an error for the public pages.
func (app *application) displaySeason(ctx context.Context, seasonID *uuid.UUID) (*league.Season, error) {
	if seasonID != nil {
		return app.seasons.Get(ctx, *seasonID)
	}
	season, err := app.seasons.Active(ctx)
	if errors.Is(err, service.ErrNoActiveSeason) {
		return nil, nil
	}
	return season, err
}

func (app *application) matchDetails(ctx context.Context, filter store.MatchFilter) ([]service.MatchDetail, error) {
	matches, err := app.matches.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return app.matches.Details(ctx, matches)
}

func (app *application) listStandings(w http.ResponseWriter, r *http.Request) {
	table, err := app.standings.Standings(r.Context())
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get standings", err)
		return
	}
	app.render.JSON(w, http.StatusOK, table)
}

func (app *application) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := app.players.List(r.Context())
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to list players", err)
		return
	}
	app.render.JSON(w, http.StatusOK, players)
}

func (app *application) getPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid player id", err)
		return
	}
	player, err := app.players.Get(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to get player", err)
		return
	}
	app.render.JSON(w, http.StatusOK, player)
}

func (app *application) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := app.games.List(r.Context())
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to list games", err)
		return
	}
	app.render.JSON(w, http.StatusOK, games)
}

func (app *application) listSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := app.seasons.List(r.Context())
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to list seasons", err)
		return
	}
	app.render.JSON(w, http.StatusOK, seasons)
}

func (app *application) getActiveSeason(w http.ResponseWriter, r *http.Request) {
	season, err := app.seasons.Active(r.Context())
	if err != nil {
		httputil.Error(w, app.render, "Failed to get active season", err)
		return
	}
	app.render.JSON(w, http.StatusOK, season)
}

func (app *application) getSeason(w http.ResponseWriter, r *http.Request) {
	id, err := seasonParam(r)
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid season id", err)
		return
	}
	season, err := app.seasons.Get(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to get season", err)
		return
	}
	app.render.JSON(w, http.StatusOK, season)
}

func (app *application) listMatches(w http.ResponseWriter, r *http.Request) {
	filter, err := matchFilter(r)
	if err != nil {
		httputil.BadRequest(w, app.render, err.Error(), err)
		return
	}
	details, err := app.matchDetails(r.Context(), filter)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to list matches", err)
		return
	}
	app.render.JSON(w, http.StatusOK, details)
}

func (app *application) getActiveWeek(w http.ResponseWriter, r *http.Request) {
	active, err := app.activeWeek.Get(r.Context())
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get active week", err)
		return
	}
	app.render.JSON(w, http.StatusOK, active)
}

// Admins see drafts as well.
func (app *application) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := app.announcements.List(r.Context(), !middleware.IsAdmin(r.Context()))
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to list announcements", err)
		return
	}
	app.render.JSON(w, http.StatusOK, items)
}

func (app *application) listCandidates(w http.ResponseWriter, r *http.Request) {
	filter, err := matchFilter(r)
	if err != nil {
		httputil.BadRequest(w, app.render, err.Error(), err)
		return
	}
	week, seasonID, err := app.weekScope(r.Context(), utils.OrZero(filter.Week), filter.SeasonID)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get active week", err)
		return
	}

	candidates, err := app.wheel.Candidates(r.Context(), seasonID, week)
	if err != nil {
		httputil.Error(w, app.render, "Failed to list wheel candidates", err)
		return
	}
	app.render.JSON(w, http.StatusOK, map[string]any{"week": week, "seasonId": seasonID, "candidates": candidates})
}
