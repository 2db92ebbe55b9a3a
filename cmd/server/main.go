package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/database"
	"github.com/onegt/chrms-backend/internal/handler"
	"github.com/onegt/chrms-backend/internal/logger"
	"github.com/onegt/chrms-backend/internal/repository"
	"github.com/onegt/chrms-backend/internal/router"
	"github.com/onegt/chrms-backend/internal/service"
	"github.com/onegt/chrms-backend/internal/validator"
	"github.com/onegt/chrms-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CHRMS Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	associateRepo := repository.NewAssociateRepository(pool)
	demandRepo := repository.NewDemandRepository(pool)
	candidateRepo := repository.NewCandidateRepository(pool)
	interviewRepo := repository.NewInterviewRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	associateService := service.NewAssociateService(associateRepo, authService)
	demandService := service.NewDemandService(demandRepo)
	notificationService := service.NewNotificationService(rdb, log)
	candidateService := service.NewCandidateService(candidateRepo, interviewRepo)
	interviewService := service.NewInterviewService(interviewRepo, candidateRepo, notificationService)
	dashboardService := service.NewDashboardService(demandRepo, candidateRepo, interviewRepo, rdb, cfg, log)
	verifier := service.NewGoogleVerifier(cfg.GoogleClientID)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, authService, associateService, verifier),
		Capability: handler.NewCapabilityHandler(),
		Associate:  handler.NewAssociateHandler(associateService),
		Demand:     handler.NewDemandHandler(demandService),
		Candidate:  handler.NewCandidateHandler(candidateService, interviewService),
		Interview:  handler.NewInterviewHandler(interviewService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		WS:         handler.NewWSHandler(notificationService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	statsWorker := worker.NewStatsWorker(dashboardService, log)
	go statsWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
