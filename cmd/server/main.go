package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JuanjoFeller/billwise/internal/auth"
	"github.com/JuanjoFeller/billwise/internal/config"
	"github.com/JuanjoFeller/billwise/internal/handlers"
	"github.com/JuanjoFeller/billwise/internal/middleware"
	"github.com/JuanjoFeller/billwise/internal/service"
	"github.com/JuanjoFeller/billwise/internal/storage/sqlite"
	"github.com/JuanjoFeller/billwise/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage ready", "path", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store)
	splitSvc := service.NewSplitService(store, cfg.BaseURL, cfg.PaymentDelay)

	mux := handlers.NewRouter(authSvc, splitSvc, jwtManager, cfg.StaticPath)
	if cfg.StaticPath != "" {
		slog.Info("serving static files", "path", cfg.StaticPath)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(middleware.WithLogging(mux)),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown failed", "error", err)
			server.Close()
		}
	}()

	slog.Info("listening", "port", cfg.Port, "base_url", cfg.BaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("server closed")
}
