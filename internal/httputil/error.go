package httputil

import (
	"errors"
	"net/http"

	"github.com/javajohnHub/hsw/internal/schedule"
	"github.com/javajohnHub/hsw/internal/service"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type errorBody struct {
	Error string `json:"error"`
}

var badRequestErrors = []error{
	service.ErrInvalidName,
	service.ErrInvalidWeek,
	service.ErrInvalidSeason,
	service.ErrInvalidDates,
	service.ErrDuplicateGame,
	service.ErrUnknownPlayer,
	service.ErrSamePlayer,
	service.ErrNotParticipant,
	service.ErrMatchResolved,
	service.ErrMatchNotResolved,
	service.ErrByeMatch,
	service.ErrInvalidResult,
	service.ErrNegativeStatistic,
	schedule.ErrInvalidRosterSize,
	schedule.ErrInvalidWeekCount,
	schedule.ErrDuplicatePlayer,
}

// StatusFor maps an error coming out of the service layer to a response status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrNoActiveSeason):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrNoEligibleCandidates), errors.Is(err, schedule.ErrNoGamesLeft):
		return http.StatusConflict
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON error response. Internal details never reach the client.
func Error(w http.ResponseWriter, rnd *render.Render, msg string, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusInternalServerError:
		InternalServerError(w, rnd, msg, err)
	case http.StatusNotFound:
		NotFound(w, rnd, err.Error(), err)
	default:
		logrus.WithError(err).WithField("message", msg).Warn("request rejected")
		rnd.JSON(w, status, errorBody{Error: err.Error()})
	}
}

func InternalServerError(w http.ResponseWriter, rnd *render.Render, msg string, err error) {
	logrus.WithError(err).WithField("message", msg).Error("internal server error")
	rnd.JSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error"})
}

func BadRequest(w http.ResponseWriter, rnd *render.Render, msg string, err error) {
	entry := logrus.WithField("message", msg)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("bad request")
	rnd.JSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

func NotFound(w http.ResponseWriter, rnd *render.Render, msg string, err error) {
	entry := logrus.WithField("message", msg)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("not found")
	rnd.JSON(w, http.StatusNotFound, errorBody{Error: msg})
}

func Unauthorized(w http.ResponseWriter, rnd *render.Render, msg string) {
	logrus.WithField("message", msg).Warn("unauthorized")
	rnd.JSON(w, http.StatusUnauthorized, errorBody{Error: msg})
}
