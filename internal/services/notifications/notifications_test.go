package notifications

import (
	"context"
	"log/slog"
	"testing"

	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/queue"
	"movievault/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[int64]*models.User
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

type fakeMovies struct {
	movies map[int]*models.Movie
}

func (f *fakeMovies) Get(_ context.Context, id int) (*models.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return movie, nil
}

type sentMail struct {
	recipient string
	tmplName  string
	tmplData  any
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Send(recipient string, tmplName string, tmplData any) error {
	f.sent = append(f.sent, sentMail{recipient, tmplName, tmplData})
	return nil
}

func TestHandleMovieCreatedSendsEmail(t *testing.T) {
	mailer := &fakeMailer{}
	service := New(
		slog.Default(),
		&fakeUsers{users: map[int64]*models.User{1: {ID: 1, Email: "test@email.com"}}},
		&fakeMovies{movies: map[int]*models.Movie{5: {ID: 5, Name: "The Titanic"}}},
		mailer,
	)

	err := service.HandleMovieCreated(context.Background(), queue.MovieCreatedEvent{UserID: 1, MovieID: 5})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "test@email.com", mailer.sent[0].recipient)
	assert.Equal(t, "movie_created.html", mailer.sent[0].tmplName)
	assert.Equal(t, map[string]any{"movieName": "The Titanic"}, mailer.sent[0].tmplData)
}

// Messages referencing vanished records are dropped without an error so
// the consumer acks them instead of looping.
func TestHandleMovieCreatedDropsInvalidMessage(t *testing.T) {
	mailer := &fakeMailer{}
	service := New(
		slog.Default(),
		&fakeUsers{users: map[int64]*models.User{}},
		&fakeMovies{movies: map[int]*models.Movie{}},
		mailer,
	)

	err := service.HandleMovieCreated(context.Background(), queue.MovieCreatedEvent{UserID: 9, MovieID: 9})
	assert.NoError(t, err)
	assert.Empty(t, mailer.sent)
}
