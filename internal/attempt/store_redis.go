package attempt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func stateKey(id uuid.UUID) string    { return fmt.Sprintf("attempt:%s:state", id) }
func feedbackKey(id uuid.UUID) string { return fmt.Sprintf("attempt:%s:feedback", id) }

func (s *redisStore) Get(ctx context.Context, id uuid.UUID) (evaluation.Snapshot, error) {
	raw, err := s.client.Get(ctx, stateKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return evaluation.Snapshot{}, ErrAttemptNotFound
	}
	if err != nil {
		return evaluation.Snapshot{}, fmt.Errorf("failed to read attempt state: %w", err)
	}

	var snap evaluation.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return evaluation.Snapshot{}, fmt.Errorf("failed to decode attempt state: %w", err)
	}
	return snap, nil
}

func (s *redisStore) Put(ctx context.Context, id uuid.UUID, snap evaluation.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode attempt state: %w", err)
	}
	if err := s.client.Set(ctx, stateKey(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write attempt state: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, stateKey(id), feedbackKey(id)).Err()
}

func (s *redisStore) PutFeedback(ctx context.Context, id uuid.UUID, text string) error {
	n, err := s.client.Exists(ctx, stateKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAttemptNotFound
	}
	return s.client.Set(ctx, feedbackKey(id), text, s.ttl).Err()
}

func (s *redisStore) Feedback(ctx context.Context, id uuid.UUID) (string, bool, error) {
	n, err := s.client.Exists(ctx, stateKey(id)).Result()
	if err != nil {
		return "", false, err
	}
	if n == 0 {
		return "", false, ErrAttemptNotFound
	}

	text, err := s.client.Get(ctx, feedbackKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (s *redisStore) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, feedbackKey(id)).Err()
}
