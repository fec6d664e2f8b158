package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// ErrUnavailable is returned by TokenStore when Redis was never initialized
// or the connection failed at startup.
var ErrUnavailable = errors.New("redis is not available")

// Config holds Redis connection configuration
type Config struct {
	URL      string // redis://... or rediss://... for TLS
	Password string
}

// Client returns the singleton Redis client instance.
// Returns nil if Redis is not configured or connection failed.
func Client() *redis.Client {
	return client
}

// Initialize initializes the Redis client with the given configuration.
// This should be called once at application startup.
// Safe for concurrent calls - only first call initializes.
func Initialize(cfg Config) error {
	clientOnce.Do(func() {
		if cfg.URL == "" {
			clientErr = errors.New("redis: REDIS_URL not configured")
			return
		}

		parsedURL, err := url.Parse(cfg.URL)
		if err != nil {
			clientErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}

		useTLS := parsedURL.Scheme == "rediss"

		addr := parsedURL.Host
		if parsedURL.Port() == "" {
			addr = parsedURL.Host + ":6379"
		}

		password := cfg.Password
		if password == "" {
			if parsedURL.User != nil {
				password, _ = parsedURL.User.Password()
			}
		}

		opts := &redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           0,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 2,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		client = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: connection failed: %w", err)
			client = nil
			return
		}
	})

	return clientErr
}

// Close closes the Redis connection gracefully.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// HealthCheck returns nil if the connection is healthy.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}

// TokenStore keeps short-lived, single-use tokens (email confirmation) in
// Redis under a namespacing prefix.
type TokenStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewTokenStore(rdb *redis.Client, prefix string, ttl time.Duration) *TokenStore {
	return &TokenStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *TokenStore) Put(ctx context.Context, token string, userID int64) error {
	if s.rdb == nil {
		return ErrUnavailable
	}
	return s.rdb.Set(ctx, s.prefix+token, userID, s.ttl).Err()
}

// Take returns the user id stored under token and deletes it, so a token can
// be used at most once. Returns redis.Nil via the error chain when the token
// is unknown or expired.
func (s *TokenStore) Take(ctx context.Context, token string) (int64, error) {
	if s.rdb == nil {
		return 0, ErrUnavailable
	}
	userID, err := s.rdb.GetDel(ctx, s.prefix+token).Int64()
	if err != nil {
		return 0, err
	}
	return userID, nil
}
