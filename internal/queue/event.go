// Package queue defines the message payloads exchanged over the broker
// and the publisher/consumer pair moving them.
package queue

// MovieCreatedQueue is declared durable by both ends, whichever starts first.
const MovieCreatedQueue = "movie.created"

// MovieCreatedEvent is published once per successfully persisted movie,
// strictly after the transaction commits.
type MovieCreatedEvent struct {
	UserID  int64 `json:"user_id"`
	MovieID int   `json:"movie_id"`
}
