package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, g Game, broker *Broker, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Word Balloon API", "/openapi.json", "/docs"))

	r.Route("/api", func(r chi.Router) {
		r.Use(limitBody)
		r.Get("/state", handleState(g))
		r.Get("/events", handleEvents(g, broker))
		r.Post("/navigate", handleNavigate(logger, g))

		r.Post("/quiz/start", handleStartQuiz(logger, g))
		r.Post("/quiz/answer", handleAnswer(logger, g))
		r.Post("/quiz/replay", handleReplay(logger, g))

		r.Post("/gacha/spin", handleSpin(logger, g))
		r.Post("/gacha/dismiss", handleDismiss(logger, g))

		r.Get("/collection", handleCollection(g))
		r.Post("/collection/{itemID}/speak", handleSpeakItem(logger, g))

		r.Post("/profile/reset", handleReset(logger, g))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
