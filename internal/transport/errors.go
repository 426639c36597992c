package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/application"
	"github.com/raedalharbi/muqawil/internal/domain/project"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses:
// validation failures 400, unresolved references 404, decided-state
// violations 409, ownership violations 403. Anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, actor.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidBudget),
		errors.Is(err, application.ErrInvalidInput),
		errors.Is(err, application.ErrInvalidBid):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, actor.ErrActorNotFound),
		errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, application.ErrApplicationNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrAlreadyDecided):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, application.ErrNotProjectOwner):
		respondError(w, http.StatusForbidden, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
