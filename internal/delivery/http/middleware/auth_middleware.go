package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"
)

// AuthMiddleware validates the bearer token and stashes the authenticated
// (user id, actor type) pair both in gin keys and in the request context, so
// usecases receiving ctx see the same identity the handlers do.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyActorType), claims.ActorType)

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, domain.KeyActorType, claims.ActorType)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireActor rejects requests whose session is not on the given side.
func RequireActor(actorType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyActorType)) != actorType {
			response.Error(c, http.StatusForbidden, "Operation not allowed for this account type", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
