package server

import (
	"log/slog"
	"net/http"

	"github.com/playperu/wordballoon/internal/game"
)

type NavigateRequest struct {
	Screen game.Screen `json:"screen"`
}

func handleNavigate(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NavigateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Screen.Valid() {
			writeError(w, http.StatusBadRequest, "unknown screen")
			return
		}
		respondIntent(w, logger, g, g.Navigate(r.Context(), req.Screen))
	}
}
