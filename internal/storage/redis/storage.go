// Package redis is a Redis-backed storage backend storing records as JSON
// values.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pash62/foot4ever2/internal/storage"
)

type Storage struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Storage{client: client}, nil
}

// NewWithClient wraps an existing client, for tests.
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadMatch(ctx context.Context) (*storage.MatchRecord, error) {
	var rec storage.MatchRecord
	ok, err := s.getJSON(ctx, matchKey(), &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) SaveMatch(ctx context.Context, rec storage.MatchRecord) error {
	return s.setJSON(ctx, matchKey(), rec)
}

func (s *Storage) LoadRatings(ctx context.Context) (*storage.RatingsRecord, error) {
	var rec storage.RatingsRecord
	ok, err := s.getJSON(ctx, ratingsKey(), &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) SaveRatings(ctx context.Context, rec storage.RatingsRecord) error {
	return s.setJSON(ctx, ratingsKey(), rec)
}

func (s *Storage) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}
