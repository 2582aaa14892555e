package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	log          *slog.Logger
	url          string
	retriesCount int
}

func NewPublisher(log *slog.Logger, url string, retriesCount int) *Publisher {
	if retriesCount < 1 {
		retriesCount = 1
	}
	return &Publisher{log: log, url: url, retriesCount: retriesCount}
}

// PublishMovieCreated sends the event to the movie.created queue as a
// persistent JSON message. Callers treat it as fire-and-forget; the error
// is returned only so they can log it.
func (p *Publisher) PublishMovieCreated(ctx context.Context, event MovieCreatedEvent) error {
	const op = "queue.Publisher.PublishMovieCreated"
	log := p.log.With("op", op, "movie_id", event.MovieID, "user_id", event.UserID)
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	for i := 0; i < p.retriesCount; i++ {
		err = p.publish(ctx, body)
		if err == nil {
			log.Debug("event published")
			return nil
		}
		log.Warn("publish attempt failed", "attempt", i+1, "errMsg", err.Error())
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

func (p *Publisher) publish(ctx context.Context, body []byte) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(MovieCreatedQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.PublishWithContext(
		ctx,
		"",
		MovieCreatedQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
