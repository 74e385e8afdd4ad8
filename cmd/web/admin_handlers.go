package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/httputil"
	"github.com/javajohnHub/hsw/internal/service"
)

type weekRequest struct {
	Week     int        `json:"week"`
	SeasonID *uuid.UUID `json:"seasonId"`
}

func (app *application) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, app.render, "Invalid player payload", err)
		return
	}
	player, err := app.players.Create(r.Context(), req.Name)
	if err != nil {
		httputil.Error(w, app.render, "Failed to create player", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, player)
}

func (app *application) updatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid player id", err)
		return
	}
	var update service.PlayerUpdate
	if err := decodeJSON(r, &update); err != nil {
		httputil.BadRequest(w, app.render, "Invalid player payload", err)
		return
	}
	player, err := app.players.Update(r.Context(), id, update)
	if err != nil {
		httputil.Error(w, app.render, "Failed to update player", err)
		return
	}
	app.render.JSON(w, http.StatusOK, player)
}

func (app *application) deletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid player id", err)
		return
	}
	if err := app.players.Delete(r.Context(), id); err != nil {
		httputil.Error(w, app.render, "Failed to delete player", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) createGame(w http.ResponseWriter, r *http.Request) {
	var in service.GameInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid game payload", err)
		return
	}
	game, err := app.games.Create(r.Context(), in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to create game", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, game)
}

func (app *application) updateGame(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid game id", err)
		return
	}
	var in service.GameInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid game payload", err)
		return
	}
	game, err := app.games.Update(r.Context(), id, in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to update game", err)
		return
	}
	app.render.JSON(w, http.StatusOK, game)
}

func (app *application) deleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid game id", err)
		return
	}
	if err := app.games.Delete(r.Context(), id); err != nil {
		httputil.Error(w, app.render, "Failed to delete game", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) spinGame(w http.ResponseWriter, r *http.Request) {
	var req weekRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, app.render, "Invalid spin payload", err)
		return
	}
	week, seasonID, err := app.weekScope(r.Context(), req.Week, req.SeasonID)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get active week", err)
		return
	}
	game, err := app.games.Spin(r.Context(), week, seasonID)
	if err != nil {
		httputil.Error(w, app.render, "Failed to spin game wheel", err)
		return
	}
	app.render.JSON(w, http.StatusOK, game)
}

func (app *application) returnGame(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid game id", err)
		return
	}
	game, err := app.games.Return(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to return game", err)
		return
	}
	app.render.JSON(w, http.StatusOK, game)
}

func (app *application) resetGames(w http.ResponseWriter, r *http.Request) {
	if err := app.games.Reset(r.Context()); err != nil {
		httputil.InternalServerError(w, app.render, "Failed to reset games", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) createSeason(w http.ResponseWriter, r *http.Request) {
	var in service.SeasonInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid season payload", err)
		return
	}
	season, err := app.seasons.Create(r.Context(), in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to create season", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, season)
}

func (app *application) updateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := seasonParam(r)
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid season id", err)
		return
	}
	var in service.SeasonInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid season payload", err)
		return
	}
	season, err := app.seasons.Update(r.Context(), id, in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to update season", err)
		return
	}
	app.render.JSON(w, http.StatusOK, season)
}

func (app *application) activateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := seasonParam(r)
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid season id", err)
		return
	}
	season, err := app.seasons.Activate(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to activate season", err)
		return
	}
	app.render.JSON(w, http.StatusOK, season)
}

func (app *application) completeSeason(w http.ResponseWriter, r *http.Request) {
	id, err := seasonParam(r)
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid season id", err)
		return
	}
	season, err := app.seasons.Complete(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to complete season", err)
		return
	}
	app.render.JSON(w, http.StatusOK, season)
}

func (app *application) generateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := seasonParam(r)
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid season id", err)
		return
	}
	matches, err := app.schedules.GenerateSeason(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to generate schedule", err)
		return
	}
	details, err := app.matches.Details(r.Context(), matches)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to resolve player names", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, details)
}

func (app *application) clearSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := seasonParam(r)
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid season id", err)
		return
	}
	if err := app.schedules.ClearSeason(r.Context(), id); err != nil {
		httputil.Error(w, app.render, "Failed to clear schedule", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) createMatch(w http.ResponseWriter, r *http.Request) {
	var in service.MatchInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid match payload", err)
		return
	}
	match, err := app.matches.Create(r.Context(), in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to create match", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, match)
}

func (app *application) spinMatch(w http.ResponseWriter, r *http.Request) {
	var req weekRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, app.render, "Invalid spin payload", err)
		return
	}
	week, seasonID, err := app.weekScope(r.Context(), req.Week, req.SeasonID)
	if err != nil {
		httputil.InternalServerError(w, app.render, "Failed to get active week", err)
		return
	}
	match, err := app.wheel.Spin(r.Context(), seasonID, week)
	if err != nil {
		httputil.Error(w, app.render, "Failed to spin wheel", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, match)
}

func (app *application) applyResult(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid match id", err)
		return
	}
	var result service.Result
	if err := decodeJSON(r, &result); err != nil {
		httputil.BadRequest(w, app.render, "Invalid result payload", err)
		return
	}
	match, err := app.matches.ApplyResult(r.Context(), id, result)
	if err != nil {
		httputil.Error(w, app.render, "Failed to record result", err)
		return
	}
	app.render.JSON(w, http.StatusOK, match)
}

func (app *application) reopenMatch(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid match id", err)
		return
	}
	match, err := app.matches.Reopen(r.Context(), id)
	if err != nil {
		httputil.Error(w, app.render, "Failed to reopen match", err)
		return
	}
	app.render.JSON(w, http.StatusOK, match)
}

func (app *application) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid match id", err)
		return
	}
	if err := app.matches.Delete(r.Context(), id); err != nil {
		httputil.Error(w, app.render, "Failed to delete match", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) deleteAllMatches(w http.ResponseWriter, r *http.Request) {
	if err := app.matches.DeleteAll(r.Context()); err != nil {
		httputil.InternalServerError(w, app.render, "Failed to delete matches", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) setActiveWeek(w http.ResponseWriter, r *http.Request) {
	var req weekRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, app.render, "Invalid active week payload", err)
		return
	}
	active, err := app.activeWeek.Set(r.Context(), req.Week, req.SeasonID)
	if err != nil {
		httputil.Error(w, app.render, "Failed to set active week", err)
		return
	}
	app.render.JSON(w, http.StatusOK, active)
}

func (app *application) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in service.AnnouncementInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid announcement payload", err)
		return
	}
	a, err := app.announcements.Create(r.Context(), in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to create announcement", err)
		return
	}
	app.render.JSON(w, http.StatusCreated, a)
}

func (app *application) updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid announcement id", err)
		return
	}
	var in service.AnnouncementInput
	if err := decodeJSON(r, &in); err != nil {
		httputil.BadRequest(w, app.render, "Invalid announcement payload", err)
		return
	}
	a, err := app.announcements.Update(r.Context(), id, in)
	if err != nil {
		httputil.Error(w, app.render, "Failed to update announcement", err)
		return
	}
	app.render.JSON(w, http.StatusOK, a)
}

func (app *application) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, app.render, "Invalid announcement id", err)
		return
	}
	if err := app.announcements.Delete(r.Context(), id); err != nil {
		httputil.Error(w, app.render, "Failed to delete announcement", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
