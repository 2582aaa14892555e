package notifications

import (
	"context"
	"errors"
	"log/slog"

	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/queue"
	"movievault/proj/internal/storage"
)

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type UsersStorage interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

type MoviesStorage interface {
	Get(ctx context.Context, id int) (*models.Movie, error)
}

type NotificationService struct {
	log    *slog.Logger
	users  UsersStorage
	movies MoviesStorage
	mailer MailProvider
}

func New(log *slog.Logger, users UsersStorage, movies MoviesStorage, mailer MailProvider) *NotificationService {
	return &NotificationService{
		log:    log,
		users:  users,
		movies: movies,
		mailer: mailer,
	}
}

// HandleMovieCreated loads both referenced records and mails the owner.
// A message referencing records that no longer exist is logged and
// dropped, not retried.
func (n *NotificationService) HandleMovieCreated(ctx context.Context, event queue.MovieCreatedEvent) error {
	const op = "notifications.NotificationService.HandleMovieCreated"
	log := n.log.With("op", op, "user_id", event.UserID, "movie_id", event.MovieID)
	user, err := n.users.Get(ctx, event.UserID)
	if err == nil {
		var movie *models.Movie
		movie, err = n.movies.Get(ctx, event.MovieID)
		if err == nil {
			log.Info("sending movie created email", "recipient", user.Email)
			return n.mailer.Send(user.Email, "movie_created.html", map[string]any{
				"movieName": movie.Name,
			})
		}
	}
	if errors.Is(err, storage.ErrNotFound) {
		log.Error("got invalid message")
		return nil
	}
	return err
}
