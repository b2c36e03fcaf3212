package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pitstopd/pitstop/internal/adapter/llm"
	"github.com/pitstopd/pitstop/internal/agent"
	"github.com/pitstopd/pitstop/internal/catalog"
	"github.com/pitstopd/pitstop/internal/config"
	"github.com/pitstopd/pitstop/internal/ledger"
	"github.com/pitstopd/pitstop/internal/logging"
	"github.com/pitstopd/pitstop/internal/tools"
	httptransport "github.com/pitstopd/pitstop/internal/transport/http"
	v1 "github.com/pitstopd/pitstop/internal/transport/http/v1"
)

func main() {
	// Load .env before anything reads the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// In-memory state, seeded once; a restart regenerates the slot grid
	// and clears bookings and histories.
	store := catalog.NewStore(time.Now(), cfg.SlotDaysAhead)
	bookings := ledger.New(store)

	registry := tools.NewRegistry()
	tools.Register(registry, store, bookings)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout(), logger)
	if err != nil {
		logger.Fatal("failed to initialize model client", zap.Error(err))
	}

	sessions := agent.NewSessionStore(cfg.SessionHistoryLimit)
	controller := agent.NewController(client, registry, sessions, cfg.ChatRawToolResults, logger)

	h := v1.NewHandler(controller, sessions, store, bookings, logger)
	e := httptransport.NewServer(h)

	go func() {
		if err := e.Start(":" + cfg.AppPort); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()
	logger.Info("assistant started",
		zap.String("port", cfg.AppPort),
		zap.String("model", cfg.GeminiModel),
		zap.Int("slot_days_ahead", cfg.SlotDaysAhead))

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down gracefully", zap.Error(err))
	}
}
