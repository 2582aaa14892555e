package main

import (
	"context"
	"flag"
	"movievault/proj/internal/api/tasks"
	"movievault/proj/internal/config"
	"movievault/proj/internal/lib/logger"
	"movievault/proj/internal/storage/postgres"
	"os"
	"time"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Close()
	log.Info("database connection established")

	bgTasks := tasks.New(log, cfg.BgTasks.MaxWorkers, cfg.BgTasks.MaxQueueSize)
	bgTasks.Run()

	app := NewApplication(cfg, log, storage, bgTasks)
	if err := app.serve(); err != nil {
		log.Error("server stopped", "reason", err.Error())
		os.Exit(1)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := bgTasks.Shutdown(shutdownCtx); err != nil {
		log.Error("background tasks shutdown failed", "reason", err.Error())
		os.Exit(1)
	}
}
