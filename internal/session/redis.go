package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis is the production Store, backed by a shared Redis instance so
// that sessions survive process restarts.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func key(token string) string {
	return "session:" + token
}

func (r *Redis) Create(ctx context.Context, userID, schoolID int64) (string, error) {
	token := uuid.NewString()

	s := Session{UserID: userID, SchoolID: schoolID}
	if err := r.client.Set(ctx, key(token), encode(s), r.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return token, nil
}

func (r *Redis) Get(ctx context.Context, token string) (Session, error) {
	// GETEX refreshes the TTL atomically with the read.
	value, err := r.client.GetEx(ctx, key(token), r.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}

		return Session{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return decode(value)
}

func (r *Redis) Remove(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}
