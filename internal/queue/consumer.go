package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one decoded event. A returned error rejects the
// message without requeueing it.
type Handler func(ctx context.Context, event MovieCreatedEvent) error

type Consumer struct {
	log     *slog.Logger
	url     string
	handler Handler
}

func NewConsumer(log *slog.Logger, url string, handler Handler) *Consumer {
	return &Consumer{log: log, url: url, handler: handler}
}

// Run consumes the movie.created queue until ctx is cancelled, redialing
// the broker with exponential backoff after any connection failure.
func (c *Consumer) Run(ctx context.Context) error {
	const op = "queue.Consumer.Run"
	log := c.log.With("op", op)
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Warn("failed to dial broker", "errMsg", err.Error(), "retry_in", backoff.String())
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second
		if err := c.consumeLoop(ctx, conn); err != nil {
			log.Warn("consume loop ended", "errMsg", err.Error())
		}
		conn.Close()
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	if err := ch.Qos(50, 0, false); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(MovieCreatedQueue, true, false, false, false, nil); err != nil {
		return err
	}
	msgs, err := ch.Consume(MovieCreatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			var event MovieCreatedEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				c.log.Error("failed to decode event", "errMsg", err.Error())
				d.Nack(false, false)
				continue
			}
			if err := c.handler(ctx, event); err != nil {
				c.log.Error("failed to handle event", "errMsg", err.Error(), "movie_id", event.MovieID)
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}
}
