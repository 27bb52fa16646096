package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const sequenceKeyPrefix = "sequence:"

// Client numbers orders and invoices with Redis counters so that every
// server instance draws from the same sequence.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Next increments and returns the named counter. The first value is 1.
func (c *Client) Next(ctx context.Context, name string) (int64, error) {
	value, err := c.rdb.Incr(ctx, sequenceKeyPrefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}
	return value, nil
}

// EnsureAtLeast raises the named counter to floor when it is lower, so a
// fresh Redis does not hand out numbers already stored in the database.
func (c *Client) EnsureAtLeast(ctx context.Context, name string, floor int64) error {
	key := sequenceKeyPrefix + name
	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current >= floor {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, floor, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to raise %s sequence: %w", name, err)
	}
	return nil
}

// Ping reports whether Redis answers; it backs the /health check.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
