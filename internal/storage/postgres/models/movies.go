package models

import (
	"context"
	"errors"

	"movievault/proj/internal/domain/fields"
	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/storage"
	"movievault/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

// Insert persists the whole movie aggregate (movie row, cast rows in
// input order, the single rating row) in one transaction. On success the
// passed movie is returned with store-assigned ids filled in.
func (m *MovieModel) Insert(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	tx, err := m.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(
		ctx,
		"INSERT INTO movies (name, director, release_date, user_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		movie.Name,
		movie.Director,
		movie.ReleaseDate,
		movie.UserID,
	).Scan(&movie.ID, &movie.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}

	for i := range movie.Casts {
		movie.Casts[i].MovieID = movie.ID
		err = tx.QueryRow(
			ctx,
			"INSERT INTO movie_casts (movie_id, name) VALUES ($1, $2) RETURNING id",
			movie.ID,
			movie.Casts[i].Name,
		).Scan(&movie.Casts[i].ID)
		if err != nil {
			return nil, translateErr(err)
		}
	}

	movie.Rating.MovieID = movie.ID
	err = tx.QueryRow(
		ctx,
		"INSERT INTO movie_ratings (movie_id, imdb, rotten_tomatto) VALUES ($1, $2, $3) RETURNING id",
		movie.ID,
		movie.Rating.Imdb,
		movie.Rating.RottenTomatto,
	).Scan(&movie.Rating.ID)
	if err != nil {
		return nil, translateErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return movie, nil
}

func (m *MovieModel) Get(ctx context.Context, id int) (*models.Movie, error) {
	rows, err := m.DB.Query(
		ctx,
		"SELECT id, name, director, release_date, user_id, created_at FROM movies WHERE id = $1",
		id,
	)
	if err != nil {
		return nil, err
	}
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if err := m.loadRelations(ctx, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// ListForUser returns the user's movies in creation order, relations
// included.
func (m *MovieModel) ListForUser(ctx context.Context, userID int64, limit int) ([]models.Movie, error) {
	query := "SELECT id, name, director, release_date, user_id, created_at FROM movies WHERE user_id = $1 ORDER BY id"
	args := []any{userID}
	if limit != storage.EmptyIntValue {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	rows, err := m.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	movies, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Movie])
	if err != nil {
		return nil, err
	}
	for i := range movies {
		if err := m.loadRelations(ctx, &movies[i]); err != nil {
			return nil, err
		}
	}
	return movies, nil
}

func (m *MovieModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *MovieModel) loadRelations(ctx context.Context, movie *models.Movie) error {
	// Casts keep insertion order, ids are assigned sequentially.
	rows, err := m.DB.Query(
		ctx,
		"SELECT id, movie_id, name FROM movie_casts WHERE movie_id = $1 ORDER BY id",
		movie.ID,
	)
	if err != nil {
		return err
	}
	casts, err := pgx.CollectRows(rows, pgx.RowToStructByName[fields.Cast])
	if err != nil {
		return err
	}
	movie.Casts = casts

	rows, err = m.DB.Query(
		ctx,
		"SELECT id, movie_id, imdb, rotten_tomatto FROM movie_ratings WHERE movie_id = $1",
		movie.ID,
	)
	if err != nil {
		return err
	}
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieRating])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrNotFound
		}
		return err
	}
	movie.Rating = rating
	return nil
}

func translateErr(err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
		return storage.ErrConflict
	}
	return err
}
