package movies

import "errors"

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrMovieForbidden = errors.New("movie belongs to another user")
)
