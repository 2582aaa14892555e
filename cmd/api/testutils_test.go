package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"movievault/proj/internal/config"
	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/queue"
	"movievault/proj/internal/services"
	"movievault/proj/internal/services/auth"
	"movievault/proj/internal/services/movies"
	"movievault/proj/internal/storage"

	govalidator "github.com/go-playground/validator/v10"
)

type fakeMoviesStorage struct {
	stored []*models.Movie
	nextID int
}

func (f *fakeMoviesStorage) Insert(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	movie.ID = f.nextID
	f.nextID++
	for i := range movie.Casts {
		movie.Casts[i].ID = i + 1
		movie.Casts[i].MovieID = movie.ID
	}
	movie.Rating.ID = movie.ID
	movie.Rating.MovieID = movie.ID
	f.stored = append(f.stored, movie)
	return movie, nil
}

func (f *fakeMoviesStorage) Get(_ context.Context, id int) (*models.Movie, error) {
	for _, movie := range f.stored {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeMoviesStorage) ListForUser(_ context.Context, userID int64, limit int) ([]models.Movie, error) {
	var result []models.Movie
	for _, movie := range f.stored {
		if movie.UserID != userID {
			continue
		}
		result = append(result, *movie)
		if limit != storage.EmptyIntValue && len(result) == limit {
			break
		}
	}
	return result, nil
}

type fakeUsersStorage struct {
	users  []*models.User
	nextID int64
}

func (f *fakeUsersStorage) Insert(_ context.Context, email string, passwordHash []byte) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return nil, storage.ErrConflict
		}
	}
	if f.nextID == 0 {
		f.nextID = 1
	}
	user := &models.User{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUsersStorage) Get(_ context.Context, id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeUsersStorage) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, storage.ErrNotFound
}

type fakeDispatcher struct {
	events []queue.MovieCreatedEvent
}

func (f *fakeDispatcher) PublishMovieCreated(_ context.Context, event queue.MovieCreatedEvent) error {
	f.events = append(f.events, event)
	return nil
}

type syncExecutor struct{}

func (syncExecutor) Add(task func()) { task() }

type testBackend struct {
	movies     *fakeMoviesStorage
	users      *fakeUsersStorage
	dispatcher *fakeDispatcher
}

func NewTestApplication(t *testing.T) (*Application, *testBackend) {
	t.Helper()
	cfg := &config.Config{
		AppSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := &testBackend{
		movies:     &fakeMoviesStorage{},
		users:      &fakeUsersStorage{},
		dispatcher: &fakeDispatcher{},
	}
	app := &Application{
		cfg:       cfg,
		log:       log,
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
		services: &services.Services{
			Auth:   auth.New(log, backend.users, cfg.AppSecret, cfg.TokenTTL),
			Movies: movies.New(log, backend.movies, backend.dispatcher, syncExecutor{}),
		},
		Http: &Http{log: log, cfg: cfg},
	}
	return app, backend
}
