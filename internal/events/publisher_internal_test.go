package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishResult(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisherWithChannel(ch, "tabuada.events")

	res := evaluation.Result{
		StudentID:       "8",
		Date:            time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Score:           4,
		TotalQuestions:  5,
		MissedQuestions: []evaluation.MissedQuestion{{Question: "3 x 9", CorrectAnswer: 27, UserAnswer: 24}},
	}
	require.NoError(t, p.PublishResult(context.Background(), res))

	require.Equal(t, "tabuada.events", ch.exchange)
	require.Equal(t, EvaluationCompleted, ch.key)
	require.Equal(t, "application/json", ch.msg.ContentType)

	var env Envelope
	require.NoError(t, json.Unmarshal(ch.msg.Body, &env))
	require.Equal(t, EvaluationCompleted, env.Type)
	require.Equal(t, res.StudentID, env.Payload.StudentID)
	require.Equal(t, res.MissedQuestions, env.Payload.MissedQuestions)

	require.NoError(t, p.Close())
	require.True(t, ch.closed)
}

func TestPublishResultError(t *testing.T) {
	p := newPublisherWithChannel(&fakeChannel{err: errors.New("channel closed")}, "x")
	require.Error(t, p.PublishResult(context.Background(), evaluation.Result{StudentID: "1"}))
}

func TestNewPublisherWithoutURL(t *testing.T) {
	p := NewPublisher("", "x")
	require.IsType(t, noopPublisher{}, p)
	require.NoError(t, p.PublishResult(context.Background(), evaluation.Result{}))
}
