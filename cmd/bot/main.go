package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pash62/foot4ever2/internal/config"
	"github.com/pash62/foot4ever2/internal/server"
	"github.com/pash62/foot4ever2/internal/storage"
	"github.com/pash62/foot4ever2/internal/storage/memory"
	redisstorage "github.com/pash62/foot4ever2/internal/storage/redis"
	"github.com/pash62/foot4ever2/internal/storage/sheets"
	"github.com/pash62/foot4ever2/internal/tgbot"
	"github.com/pash62/foot4ever2/internal/util"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := newStore(cfg)
	if err != nil {
		logger.Error("storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	botApp, err := tgbot.New(cfg, store, logger)
	if err != nil {
		logger.Error("telegram", slog.String("error", err.Error()))
		os.Exit(1)
	}

	httpSrv := server.New(cfg, botApp)
	if cfg.BasePublicURL != "" {
		logger.Info("lineup export",
			slog.String("url", cfg.BasePublicURL+"/export/lineup.csv?token="+
				util.HMACSHA256Hex(cfg.ExportSecret, server.ExportTokenMessage)))
	}

	go func() {
		logger.Info("HTTP listening", slog.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := botApp.Run(ctx); err != nil {
			logger.Error("bot stopped", slog.String("error", err.Error()))
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down...")

	cancel()
	ctxTimeout, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = httpSrv.Shutdown(ctxTimeout)

	logger.Info("bye")
}

func newStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		return redisstorage.New(redisCfg)
	case "sheets":
		return sheets.NewClient(cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
	default:
		return memory.New(), nil
	}
}
