package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/engine"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

// Deps is everything the handlers need. The engine is the only component that
// talks to the reasoning service; LLMConfigured mirrors whether a credential
// was present at boot so the chat endpoint can report the configuration error
// the way the player-facing contract requires.
type Deps struct {
	Logger        *slog.Logger
	DB            *sql.DB
	Quizzes       quiz.Repository
	Daily         *daily.Machine
	Engine        *engine.Engine
	Transcript    TranscriptStore
	LLMConfigured bool
	SPADir        string
}

func addRoutes(r chi.Router, d Deps) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Toady Quiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(d.Logger, d.DB))

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", handleChat(d, broker))
		r.Get("/chat/history", handleChatHistory(d))
		r.Get("/quiz/today", handleToday(d))
		r.Post("/quiz/hint", handleHint(d, broker))
		r.Post("/quiz/reveal", handleReveal(d, broker))
		r.Delete("/quiz/progress", handleClearProgress(d))
		r.Get("/quiz/events", handleEvents(broker))
	})

	if d.SPADir != "" {
		if info, err := os.Stat(d.SPADir); err == nil && info.IsDir() {
			d.Logger.Info("serving SPA", "dir", d.SPADir)
			r.NotFound(handleSPA(d.SPADir))
		}
	}
}
