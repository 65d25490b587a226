package server

import (
	"log/slog"
	"net/http"
	"strings"
)

type AnswerRequest struct {
	OptionID string `json:"optionId"`
}

func handleStartQuiz(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondIntent(w, logger, g, g.StartQuiz(r.Context()))
	}
}

func handleAnswer(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.OptionID = strings.TrimSpace(req.OptionID)
		if req.OptionID == "" {
			writeError(w, http.StatusBadRequest, "optionId is required")
			return
		}
		respondIntent(w, logger, g, g.Answer(r.Context(), req.OptionID))
	}
}

func handleReplay(logger *slog.Logger, g Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondIntent(w, logger, g, g.ReplayPrompt(r.Context()))
	}
}
