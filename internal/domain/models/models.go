package models

import (
	"movievault/proj/internal/domain/fields"
	"time"
)

type Movie struct {
	ID          int             `json:"id"`           // Unique integer ID for the movie, assigned by the store
	Name        string          `json:"name"`         // Movie name, copied verbatim from the request
	Director    string          `json:"director"`     // Movie director
	ReleaseDate string          `json:"release_date"` // Lexical DD-MM-YYYY date, stored as text
	Casts       fields.CastList `json:"casts"`        // Cast members in insertion order, at least one
	Rating      MovieRating     `json:"ratings"`      // Exactly one rating record per movie
	UserID      int64           `json:"-"`            // Owning user, immutable after creation
	CreatedAt   time.Time       `json:"-"`
}

type MovieRating struct {
	ID            int      `json:"-"`
	MovieID       int      `json:"-"`
	Imdb          *float64 `json:"imdb"`           // nil means "no score", not zero
	RottenTomatto *float64 `json:"rotten_tomatto"` // spelling kept for wire compatibility
}

type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser || u == nil
}
