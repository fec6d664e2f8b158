package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/pkg/token"
)

func TestManagerRoundTrip(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	t.Run("Issued token parses back to the same claims", func(t *testing.T) {
		signed, err := m.Issue(token.Claims{
			UserID:    42,
			Email:     "ivan@example.com",
			ActorType: "APPLICANT",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)

		claims, err := m.Parse(signed)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "ivan@example.com", claims.Email)
		assert.Equal(t, "APPLICANT", claims.ActorType)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, err := other.Issue(token.Claims{UserID: 1, ActorType: "COMPANY"})
		assert.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		expired := token.NewManager("test-secret", -time.Minute)
		signed, err := expired.Issue(token.Claims{UserID: 1, ActorType: "COMPANY"})
		assert.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Tampered token is rejected", func(t *testing.T) {
		signed, err := m.Issue(token.Claims{UserID: 1, ActorType: "COMPANY"})
		assert.NoError(t, err)

		_, err = m.Parse(signed + "x")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Garbage input is rejected", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
