package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/playperu/wordballoon/internal/game"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// respondIntent answers a player intent: the new snapshot on success, 409 when
// the controller refused it.
func respondIntent(w http.ResponseWriter, logger *slog.Logger, g Game, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, g.Snapshot())
	case game.IsRejection(err):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("handling intent", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
