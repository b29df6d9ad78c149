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

	"github.com/joho/godotenv"

	"github.com/hongminglow/techjobbkk/internal/auth"
	"github.com/hongminglow/techjobbkk/internal/config"
	"github.com/hongminglow/techjobbkk/internal/media"
	"github.com/hongminglow/techjobbkk/internal/server"
	"github.com/hongminglow/techjobbkk/internal/session/redisstore"
	"github.com/hongminglow/techjobbkk/internal/storage/memory"
	postgres "github.com/hongminglow/techjobbkk/internal/storage/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	loadLocalEnv(logger)

	cfg, err := config.Load()
	if err != nil {
		fatal(logger, "load config", err)
	}

	ctx := context.Background()
	deps := server.Deps{Logger: logger}

	if cfg.InMemory() {
		logger.Warn("DATABASE_URL=memory; using in-process store, data is lost on exit")
		store := memory.New()
		deps.Users, deps.Jobs = store, store
	} else {
		store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			fatal(logger, "init database", err)
		}
		defer store.Close()
		deps.Users, deps.Jobs = store, store
	}

	switch cfg.SessionBackend {
	case config.SessionRedis:
		sessions, err := redisstore.New(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.SessionTTL,
		})
		if err != nil {
			fatal(logger, "init session store", err)
		}
		defer sessions.Close()
		deps.Sessions = sessions
	default:
		deps.Sessions = auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	}

	if cfg.MediaEnabled() {
		logos, err := media.NewPresigner(ctx, media.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			TTL:       cfg.LogoURLTTL,
		})
		if err != nil {
			fatal(logger, "init media", err)
		}
		deps.Logos = logos
	}

	srv := server.New(cfg, deps)

	go func() {
		logger.Info("TechJobBkk backend listening", slog.String("addr", cfg.HTTPAddress()), slog.String("sessions", cfg.SessionBackend))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(logger, "http server error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", slog.Any("error", err))
	}
}

func loadLocalEnv(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found; relying on existing environment")
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("error", err))
	os.Exit(1)
}
