package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raedalharbi/muqawil/internal/config"
	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/application"
	"github.com/raedalharbi/muqawil/internal/domain/assist"
	"github.com/raedalharbi/muqawil/internal/domain/project"
	"github.com/raedalharbi/muqawil/internal/domain/session"
	"github.com/raedalharbi/muqawil/internal/seed"
	"github.com/raedalharbi/muqawil/internal/sqlite"
	"github.com/raedalharbi/muqawil/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	actorRepo := sqlite.NewActorRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	applicationRepo := sqlite.NewApplicationRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	actorSvc := actor.NewService(actorRepo, activityRepo, logger)
	projectSvc := project.NewService(projectRepo, activityRepo, logger)
	applicationSvc := application.NewService(applicationRepo, projectRepo, activityRepo, logger)
	sessionSvc := session.NewService(sessionRepo, actorRepo, logger)
	activitySvc := activity.NewService(activityRepo, logger)

	var generator assist.Generator
	if cfg.Assist.APIKey != "" {
		gen, err := assist.NewGeminiGenerator(context.Background(), cfg.Assist.APIKey, cfg.Assist.Model)
		if err != nil {
			logger.Error("failed to create assist generator", "error", err)
			os.Exit(1)
		}
		generator = gen
		logger.Info("assist gateway enabled", "generator", gen.Name())
	} else {
		logger.Info("assist gateway disabled", "reason", "no API key configured")
	}
	assistSvc := assist.NewService(generator, logger)

	if cfg.Seed.Enabled {
		if err := seed.Run(context.Background(), actorRepo, projectRepo); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	router := transport.NewServer(transport.Services{
		Actors:       actorSvc,
		Projects:     projectSvc,
		Applications: applicationSvc,
		Sessions:     sessionSvc,
		Activity:     activitySvc,
		Assist:       assistSvc,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
