package services

import (
	"log/slog"

	"movievault/proj/internal/config"
	"movievault/proj/internal/mails"
	"movievault/proj/internal/queue"
	"movievault/proj/internal/services/auth"
	"movievault/proj/internal/services/movies"
	"movievault/proj/internal/services/notifications"
	dbmodels "movievault/proj/internal/storage/postgres/models"
)

type Services struct {
	Auth          *auth.AuthService
	Movies        *movies.MovieService
	Notifications *notifications.NotificationService
}

func New(log *slog.Logger, cfg *config.Config, db *dbmodels.Models, taskExecutor movies.TaskExecutor) *Services {
	mailer := mails.New(
		cfg.SMTPServer.Host,
		cfg.SMTPServer.Port,
		cfg.SMTPServer.Timeout,
		cfg.SMTPServer.Username,
		cfg.SMTPServer.Password,
		cfg.SMTPServer.Sender,
		cfg.SMTPServer.RetriesCount,
	)
	dispatcher := queue.NewPublisher(log, cfg.Queue.Url, cfg.Queue.RetriesCount)
	return &Services{
		Auth:          auth.New(log, db.Users, cfg.AppSecret, cfg.TokenTTL),
		Movies:        movies.New(log, db.Movies, dispatcher, taskExecutor),
		Notifications: notifications.New(log, db.Users, db.Movies, mailer),
	}
}
