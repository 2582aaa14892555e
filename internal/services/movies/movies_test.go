package movies

import (
	"context"
	"testing"

	"movievault/proj/internal/domain/fields"
	"movievault/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovie(store *fakeMoviesStorage, ownerID int64) *models.Movie {
	movie, err := store.Insert(context.Background(), &models.Movie{
		Name:        "The Titanic",
		Director:    "James Cameron",
		ReleaseDate: "18-01-1998",
		UserID:      ownerID,
		Casts:       fields.NewCastList([]string{"DiCaprio"}),
	})
	if err != nil {
		panic(err)
	}
	return movie
}

func TestGetReturnsOwnMovie(t *testing.T) {
	store := newFakeMoviesStorage()
	service := newTestService(store, &fakeDispatcher{})
	seeded := seedMovie(store, 1)

	movie, err := service.Get(context.Background(), seeded.ID, &models.User{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, movie.ID)
}

func TestGetUnknownMovieIsNotFound(t *testing.T) {
	store := newFakeMoviesStorage()
	service := newTestService(store, &fakeDispatcher{})

	_, err := service.Get(context.Background(), 99, &models.User{ID: 1})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

// Existence of a foreign movie is reported as forbidden, never hidden
// behind not-found.
func TestGetForeignMovieIsForbidden(t *testing.T) {
	store := newFakeMoviesStorage()
	service := newTestService(store, &fakeDispatcher{})
	seeded := seedMovie(store, 1)

	_, err := service.Get(context.Background(), seeded.ID, &models.User{ID: 2})
	assert.ErrorIs(t, err, ErrMovieForbidden)
}

func TestListReturnsOnlyRequestersMovies(t *testing.T) {
	store := newFakeMoviesStorage()
	service := newTestService(store, &fakeDispatcher{})
	seedMovie(store, 1)
	seedMovie(store, 1)
	seedMovie(store, 2)

	movies, err := service.List(context.Background(), &models.User{ID: 1}, -1)
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}
