package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/books_gateway/utils"
)

// SessionMiddleware validates the upstream-issued JWT and puts the
// session identity into the request context. Requests without a token
// pass through; protected handlers check for a username themselves.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		claims, err := utils.JwtValidate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyToken, token)
		ctx = context.WithValue(ctx, utils.ContextKeyUsername, claims.Username)
		ctx = context.WithValue(ctx, utils.ContextKeyUserId, claims.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
