package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"resumatch/internal/config"
	"resumatch/internal/errors"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

// ErrMiss is returned by a Backend when a key is absent.
var ErrMiss = stderrors.New("store: miss")

// Backend is a shared second-level store for serialized reports.
type Backend interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Close() error
}

// RedisBackend keeps reports in Redis under a key prefix.
type RedisBackend struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBackend creates a Redis backend. It does not dial; use Ping.
func NewRedisBackend(cfg config.RedisConfig) *RedisBackend {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	return &RedisBackend{rdb: rdb, prefix: cfg.KeyPrefix}
}

// Ping checks that Redis is reachable.
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

func (b *RedisBackend) key(id string) string {
	return b.prefix + id
}

func (b *RedisBackend) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := b.rdb.Get(ctx, b.key(id)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}
	return data, nil
}

func (b *RedisBackend) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if err := b.rdb.Set(ctx, b.key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", id, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}

// breakerBackend guards a Backend with a circuit breaker. Misses do not
// count as failures.
type breakerBackend struct {
	next Backend
	cb   *gobreaker.CircuitBreaker[[]byte]
}

// newBreakerBackend wraps next. It returns next unchanged when the breaker
// is disabled.
func newBreakerBackend(next Backend, cfg config.CircuitBreakerConfig, logger *errors.Logger) Backend {
	if !cfg.Enabled {
		return next
	}

	settings := gobreaker.Settings{
		Name:        "store-redis",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"max_requests", cfg.MaxRequests,
				"failure_threshold", cfg.FailureThreshold)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || stderrors.Is(err, ErrMiss)
		},
	}

	return &breakerBackend{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (b *breakerBackend) Get(ctx context.Context, id string) ([]byte, error) {
	return b.cb.Execute(func() ([]byte, error) {
		return b.next.Get(ctx, id)
	})
}

func (b *breakerBackend) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	_, err := b.cb.Execute(func() ([]byte, error) {
		return nil, b.next.Set(ctx, id, data, ttl)
	})
	return err
}

func (b *breakerBackend) Close() error {
	return b.next.Close()
}

// stats returns circuit breaker statistics
func (b *breakerBackend) stats() map[string]any {
	return map[string]any{
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
		"enabled": true,
	}
}

// healthy returns true if the circuit breaker is in closed state
func (b *breakerBackend) healthy() bool {
	return b.cb.State() == gobreaker.StateClosed
}
