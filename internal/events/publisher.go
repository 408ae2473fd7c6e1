package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

const EvaluationCompleted = "evaluation.completed"

type Envelope struct {
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Payload    evaluation.Result `json:"payload"`
}

type Publisher interface {
	PublishResult(ctx context.Context, res evaluation.Result) error
	Close() error
}

// publishChannel is the subset of *amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type rabbitPublisher struct {
	conn     *amqp.Connection
	channel  publishChannel
	exchange string
}

func NewRabbitPublisher(url, exchange string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &rabbitPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func newPublisherWithChannel(ch publishChannel, exchange string) *rabbitPublisher {
	return &rabbitPublisher{channel: ch, exchange: exchange}
}

func (p *rabbitPublisher) PublishResult(ctx context.Context, res evaluation.Result) error {
	body, err := json.Marshal(Envelope{
		Type:       EvaluationCompleted,
		OccurredAt: time.Now().UTC(),
		Payload:    res,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, EvaluationCompleted, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", EvaluationCompleted, err)
	}

	config.WithContext(ctx).WithField("student_id", res.StudentID).Debug("Published evaluation event")
	return nil
}

func (p *rabbitPublisher) Close() error {
	var err error
	if p.channel != nil {
		err = p.channel.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) PublishResult(context.Context, evaluation.Result) error { return nil }
func (noopPublisher) Close() error                                           { return nil }

// NewPublisher connects to RabbitMQ when a url is configured and falls back to
// a no-op publisher otherwise.
func NewPublisher(url, exchange string) Publisher {
	if url == "" {
		return NewNoopPublisher()
	}
	p, err := NewRabbitPublisher(url, exchange)
	if err != nil {
		config.Logger.WithError(err).Warn("RabbitMQ unavailable, evaluation events disabled")
		return NewNoopPublisher()
	}
	return p
}
