/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsense/assistant"
	"github.com/humaidq/vitalsense/db"
	"github.com/humaidq/vitalsense/knowledge"
	"github.com/humaidq/vitalsense/routes"
	"github.com/humaidq/vitalsense/trend"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags:   startFlags(),
	Action:  start,
}

// serverStore is what the web app needs from persistence.
type serverStore interface {
	routes.ReportStore
	routes.HealthChecker
}

type webDeps struct {
	store    serverStore
	contexts routes.ContextProvider
	analyzer trend.Analyzer
	ai       *routes.Assistant
}

func start(ctx context.Context, cmd *cli.Command) (err error) {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return errDatabaseURLRequired
	}

	appLogger.Info("Connecting to database")

	store, err := db.Open(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	appLogger.Info("Syncing database schema")

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to sync schema: %w", err)
	}

	enc, err := newEncoder(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	kstore, err := knowledgeStore(ctx, enc, store)
	if err != nil {
		return err
	}

	contexts := knowledge.NewContextualizer(enc, knowledge.NewRetriever(kstore, enc.Dimensions()))

	ai, err := newAssistant(ctx, cmd)
	if err != nil {
		return err
	}

	f := newWebApp(webDeps{
		store:    store,
		contexts: contexts,
		analyzer: trend.Analyzer{StableThreshold: cmd.Float("stable-threshold")},
		ai:       ai,
	})

	port := cmd.String("port")

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		ErrorLog:     requestStdLogger,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Failed to shut down web server", "error", err)
		}
	}()

	appLogger.Info("Starting web server", "port", port, "encoder", enc.Name())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}

	return nil
}

func newWebApp(d webDeps) *flamego.Flame {
	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)

	f.MapTo(d.store, (*routes.ReportStore)(nil))
	f.MapTo(d.store, (*routes.HealthChecker)(nil))
	f.MapTo(d.contexts, (*routes.ContextProvider)(nil))
	f.Map(d.analyzer)
	f.Map(d.ai)

	routes.Register(f)

	return f
}

// newAssistant wires the model-backed features that are configured. Missing
// configuration disables a feature rather than failing startup.
func newAssistant(ctx context.Context, cmd *cli.Command) (*routes.Assistant, error) {
	ai := &routes.Assistant{}

	if apiKey := cmd.String("gemini-api-key"); apiKey != "" {
		gemini, err := assistant.NewGemini(ctx, apiKey, cmd.String("gemini-model"))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		ai.Extractor = gemini
		ai.Explainer = gemini
		ai.Summarizer = gemini
	} else {
		appLogger.Warn("GEMINI_API_KEY not set, report upload and explanations are disabled")
	}

	chat, err := assistant.NewOllama(cmd.String("ollama-url"), cmd.String("ollama-model"))
	switch {
	case err == nil:
		ai.Chat = chat
	case errors.Is(err, assistant.ErrNotConfigured):
		appLogger.Warn("Report chat disabled", "reason", err)
	default:
		return nil, err
	}

	return ai, nil
}
