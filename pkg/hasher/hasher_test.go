package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"go-jobboard-backend/pkg/hasher"
)

func TestBcryptHasher(t *testing.T) {
	h := hasher.NewBcryptHasher(bcrypt.MinCost)

	t.Run("Hash and compare round trip", func(t *testing.T) {
		hash, err := h.Hash("secret")
		assert.NoError(t, err)
		assert.NotEqual(t, "secret", hash)
		assert.NoError(t, h.Compare(hash, "secret"))
	})

	t.Run("Wrong password does not compare", func(t *testing.T) {
		hash, err := h.Hash("secret")
		assert.NoError(t, err)
		assert.Error(t, h.Compare(hash, "wrong"))
	})

	t.Run("Same password hashes differently each time", func(t *testing.T) {
		first, _ := h.Hash("secret")
		second, _ := h.Hash("secret")
		assert.NotEqual(t, first, second)
	})

	t.Run("Out-of-range cost falls back to the bcrypt default", func(t *testing.T) {
		loose := hasher.NewBcryptHasher(999)
		hash, err := loose.Hash("secret")
		assert.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		assert.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
