package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/pkg/redis"
)

func TestTokenStoreWithoutRedis(t *testing.T) {
	// Startup tolerates Redis being down; the store must degrade into errors
	// instead of dereferencing a nil client.
	store := redis.NewTokenStore(nil, "confirm:", time.Hour)

	t.Run("Put reports unavailability instead of panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			err := store.Put(context.Background(), "tok-1", 42)
			assert.ErrorIs(t, err, redis.ErrUnavailable)
		})
	})

	t.Run("Take reports unavailability instead of panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, err := store.Take(context.Background(), "tok-1")
			assert.ErrorIs(t, err, redis.ErrUnavailable)
		})
	})
}
