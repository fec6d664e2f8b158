package usecase

import (
	"context"

	"go-jobboard-backend/pkg/token"
)

// PasswordHasher abstracts pkg/hasher for tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer abstracts pkg/token for tests.
type TokenIssuer interface {
	Issue(c token.Claims) (string, error)
}

// ConfirmTokenStore holds single-use email-confirmation tokens.
// pkg/redis.TokenStore satisfies it.
type ConfirmTokenStore interface {
	Put(ctx context.Context, token string, userID int64) error
	Take(ctx context.Context, token string) (int64, error)
}
