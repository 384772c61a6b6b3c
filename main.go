package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rally-metrics/internal/cache"
	"github.com/mauv0809/rally-metrics/internal/config"
	"github.com/mauv0809/rally-metrics/internal/database"
	"github.com/mauv0809/rally-metrics/internal/gemini"
	server "github.com/mauv0809/rally-metrics/internal/http"
	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/notifier"
	"github.com/mauv0809/rally-metrics/internal/notifier/slack"
	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/mauv0809/rally-metrics/internal/query"
	"github.com/mauv0809/rally-metrics/internal/refresh"
	"github.com/mauv0809/rally-metrics/internal/summary"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	playerStore := player.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	summaryCache := cache.NewNoop()
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.Connect(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			log.Warn("Summary cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			summaryCache = cache.NewRedis(redisClient, cfg.Redis.SummaryTTL)
		}
	}

	var reportNotifier notifier.Notifier = notifier.Noop{}
	if cfg.Slack.Enabled() {
		reportNotifier = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	}

	pipeline := importer.New(playerStore, metricsSvc)
	engine := query.New(playerStore)
	generator := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.Timeout)
	summaries := summary.New(playerStore, generator, metricsSvc, summaryCache)
	runner := refresh.NewRunner(cfg.Refresh.Command, cfg.Refresh.CommandTimeout, cfg.StatsCSVPath, pipeline, reportNotifier)

	scheduler, err := refresh.NewScheduler(runner, cfg.Refresh.Schedule, cfg.Refresh.Timezone, cfg.Refresh.CommandTimeout+time.Minute)
	if err != nil {
		log.Fatalf("Failed to configure refresh schedule: %s", err)
	}
	scheduler.Start()

	s := server.NewServer(
		playerStore,
		pipeline,
		engine,
		summaries,
		runner,
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
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
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

		select {
		case <-scheduler.Stop().Done():
			log.Info("Refresh scheduler stopped")
		case <-ctx.Done():
			log.Warn("Refresh still running at shutdown deadline")
		}
	}

	log.Info("Server process shutting down")
}
