package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/wordballoon/internal/game"
)

type ResetRequest struct {
	Confirm bool   `json:"confirm"`
	PIN     string `json:"pin,omitempty"`
}

func handleReset(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		err := g.ResetProfile(r.Context(), game.Confirmation{Confirmed: req.Confirm, PIN: req.PIN})
		if err == nil {
			logger.Info("profile reset via api", "remote", r.RemoteAddr)
		}
		respondIntent(w, logger, g, err)
	}
}

func handleSpeakItem(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondIntent(w, logger, g, g.SpeakItem(r.Context(), chi.URLParam(r, "itemID")))
	}
}
