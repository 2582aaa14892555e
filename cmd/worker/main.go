package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movievault/proj/internal/config"
	"movievault/proj/internal/lib/logger"
	"movievault/proj/internal/mails"
	"movievault/proj/internal/queue"
	"movievault/proj/internal/services/notifications"
	"movievault/proj/internal/storage/postgres"
	dbmodels "movievault/proj/internal/storage/postgres/models"
)

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

	db := dbmodels.New(storage)
	mailer := mails.New(
		cfg.SMTPServer.Host,
		cfg.SMTPServer.Port,
		cfg.SMTPServer.Timeout,
		cfg.SMTPServer.Username,
		cfg.SMTPServer.Password,
		cfg.SMTPServer.Sender,
		cfg.SMTPServer.RetriesCount,
	)
	notifier := notifications.New(log, db.Users, db.Movies, mailer)
	consumer := queue.NewConsumer(log, cfg.Queue.Url, notifier.HandleMovieCreated)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log.Info("starting notification worker", "queue", queue.MovieCreatedQueue)
	if err := consumer.Run(runCtx); err != nil {
		log.Error("worker stopped", "reason", err.Error())
		os.Exit(1)
	}
	log.Info("worker stopped")
}
