package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/config"
	"github.com/mauv0809/padwell/internal/database"
	"github.com/mauv0809/padwell/internal/github"
	server "github.com/mauv0809/padwell/internal/http"
	"github.com/mauv0809/padwell/internal/importer"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/playtomic"
	"github.com/mauv0809/padwell/internal/slack"
	"github.com/mauv0809/padwell/internal/source"
	"github.com/mauv0809/padwell/internal/standings"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}
	log.SetLevel(config.ParseLogLevel(cfg.LogLevel))

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	// The match store backs MATCH_SOURCE=db and is the target of Playtomic imports.
	var (
		db        *sql.DB
		clubStore club.MatchStore
	)
	if cfg.MatchSource == config.MatchSourceDB || cfg.TenantID != "" {
		var dbTeardown func()
		db, dbTeardown, err = database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		defer func() {
			log.Info("Closing database connection")
			dbTeardown()
		}()
		log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())
		clubStore = club.New(db)
	}

	var githubClient *github.Client
	if cfg.GitHub.Owner != "" {
		githubClient = github.NewClient(github.Config{
			Owner:         cfg.GitHub.Owner,
			Repo:          cfg.GitHub.Repo,
			Path:          cfg.GitHub.Path,
			Token:         cfg.GitHub.Token,
			BaseURL:       cfg.GitHub.APIURL,
			RatePerMinute: cfg.GitHub.RatePerMinute,
		})
	}

	var current standings.MatchSource
	switch cfg.MatchSource {
	case config.MatchSourceDB:
		current = clubStore
	case config.MatchSourceGitHub:
		current = githubClient
	default:
		current = source.NewFileSource(cfg.MatchesFile)
	}

	opts := []standings.Option{standings.WithCache(standings.NewCache(cfg.CacheSize))}
	switch cfg.HistorySource {
	case config.HistorySourceGitHub:
		opts = append(opts, standings.WithHistory(githubClient))
	case config.HistorySourceFile:
		opts = append(opts, standings.WithHistory(source.NewSnapshotFile(cfg.PreviousFile)))
	case config.HistorySourceCutoff:
		opts = append(opts, standings.WithHistory(source.NewDateCutoff(current)))
	}
	standingsSvc := standings.NewService(current, metricsSvc, opts...)
	log.Info("Standings service configured", "source", cfg.MatchSource, "history", cfg.HistorySource, "cache_size", cfg.CacheSize)

	var matchImporter *importer.Importer
	if cfg.TenantID != "" {
		matchImporter = importer.New(playtomic.NewClient(cfg.Playtomic.APIURL), clubStore, metricsSvc, cfg.TenantID)
	}
	slackClient := slack.NewClient(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	s := server.NewServer(
		standingsSvc,
		clubStore,
		matchImporter,
		slackClient,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
