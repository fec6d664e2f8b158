package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by the access token. ActorType distinguishes applicant and
// company sessions.
type Claims struct {
	UserID    int64
	Email     string
	ActorType string
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(c Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        fmt.Sprintf("%d", c.UserID),
		"user_id":    c.UserID,
		"email":      c.Email,
		"actor_type": c.ActorType,
		"iat":        now.Unix(),
		"exp":        now.Add(m.ttl).Unix(),
	})
	return t.SignedString(m.secret)
}

func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	actorType, _ := claims["actor_type"].(string)
	if actorType == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    int64(userID),
		Email:     email,
		ActorType: actorType,
	}, nil
}
