package movies

import (
	"context"
	"errors"
	"log/slog"

	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/queue"
	"movievault/proj/internal/storage"
)

type MoviesStorage interface {
	Get(ctx context.Context, id int) (*models.Movie, error)
	Insert(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	ListForUser(ctx context.Context, userID int64, limit int) ([]models.Movie, error)
}

// Dispatcher hands the post-creation notification to the message broker.
// Delivery and retry semantics live entirely on the other side of it.
type Dispatcher interface {
	PublishMovieCreated(ctx context.Context, event queue.MovieCreatedEvent) error
}

type TaskExecutor interface {
	Add(task func())
}

type MovieService struct {
	log          *slog.Logger
	storage      MoviesStorage
	dispatcher   Dispatcher
	taskExecutor TaskExecutor
}

func New(log *slog.Logger, storage MoviesStorage, dispatcher Dispatcher, taskExecutor TaskExecutor) *MovieService {
	return &MovieService{
		log:          log,
		storage:      storage,
		dispatcher:   dispatcher,
		taskExecutor: taskExecutor,
	}
}

// Get enforces the ownership policy: a movie that exists but belongs to
// someone else is reported as forbidden, not folded into not-found.
func (s *MovieService) Get(ctx context.Context, id int, requester *models.User) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	if movie.UserID != requester.ID {
		log.Info("movie belongs to another user", "owner_id", movie.UserID, "requester_id", requester.ID)
		return nil, ErrMovieForbidden
	}
	return movie, nil
}

func (s *MovieService) List(ctx context.Context, requester *models.User, limit int) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op, "user_id", requester.ID)
	movies, err := s.storage.ListForUser(ctx, requester.ID, limit)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movies, nil
}
