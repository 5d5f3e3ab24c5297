package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/auth"
	"github.com/Uchencho/Bar-Zubi/internal/config"
	"github.com/Uchencho/Bar-Zubi/internal/db"
	transport "github.com/Uchencho/Bar-Zubi/internal/http"
	"github.com/Uchencho/Bar-Zubi/internal/migrate"
	"github.com/Uchencho/Bar-Zubi/internal/repo"
	"github.com/Uchencho/Bar-Zubi/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.EnsureBootstrapSuperuser(ctx, dbConn.Pool, cfg.RequestTimeout, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		logger.Error("failed to seed superuser", "error", err)
		os.Exit(1)
	}

	accountRepo := repo.NewAccountRepo(dbConn.Pool, cfg.RequestTimeout)
	enquiryRepo := repo.NewEnquiryRepo(dbConn.Pool, cfg.RequestTimeout)

	codec := auth.NewTokenCodec(cfg.JWTSecret)
	sessions := auth.NewSessions(accountRepo, codec, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.ServiceToken)
	enquiryService := services.NewEnquiryService(enquiryRepo)

	router := transport.NewRouter(transport.Dependencies{
		Config:    cfg,
		Accounts:  accountRepo,
		Sessions:  sessions,
		Enquiries: enquiryService,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
