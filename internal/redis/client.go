// Package redis wraps the go-redis client so stores depend on a small
// interface that tests can satisfy with miniredis.
package redis

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily, so an unreachable server only surfaces on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}), nil
}
