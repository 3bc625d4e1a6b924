package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/toadygame/turtlesoup/internal/config"
	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/database"
	"github.com/toadygame/turtlesoup/internal/engine"
	"github.com/toadygame/turtlesoup/internal/migrations"
	"github.com/toadygame/turtlesoup/internal/quiz"
	"github.com/toadygame/turtlesoup/internal/reasoning"
	"github.com/toadygame/turtlesoup/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	quizzes := quiz.NewSQLiteStore(db)
	if err := quizzes.Seed(ctx); err != nil {
		return fmt.Errorf("seeding quizzes: %w", err)
	}

	// --- Reasoning ---
	llm := reasoning.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.ReasoningTimeout)
	if !llm.Configured() {
		logger.Warn("OPENAI_API_KEY is not set, chat endpoint will reject requests")
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, server.Deps{
		Logger:        logger,
		DB:            db,
		Quizzes:       quizzes,
		Daily:         daily.NewMachine(daily.NewSQLiteStore(db), quiz.CatalogueIDs),
		Engine:        engine.New(llm, logger),
		Transcript:    server.NewSQLiteTranscript(db),
		LLMConfigured: llm.Configured(),
		SPADir:        cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
