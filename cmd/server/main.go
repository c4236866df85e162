package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inklet/core/internal/app"
	"github.com/inklet/core/internal/config"
	"github.com/inklet/core/internal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("failed to load config", zap.Error(err))
	}

	log, err := logger.New(logger.Options{
		Dir:          cfg.Log.Dir,
		Level:        cfg.Log.Level,
		Development:  cfg.IsDev(),
		RotateSizeMB: cfg.Log.RotateSizeMB,
		RotateKeep:   cfg.Log.RotateKeep,
	})
	if err != nil {
		log, _ = zap.NewProduction()
		log.Warn("log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	defer log.Sync()

	application, err := app.New(log, cfg)
	if err != nil {
		log.Fatal("failed to initialize app", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    application.Addr(),
		Handler: application.Router(),
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}
	if err := application.Close(); err != nil {
		log.Warn("cleanup error", zap.Error(err))
	}
	log.Info("server exited")
}
