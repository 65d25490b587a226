package server

import (
	"log/slog"
	"net/http"
)

func handleSpin(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondIntent(w, logger, g, g.Spin(r.Context()))
	}
}

func handleDismiss(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondIntent(w, logger, g, g.DismissDraw(r.Context()))
	}
}
