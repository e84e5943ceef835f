package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader is the request header carrying the caller-supplied key.
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

const idempotencyKeyCtxKey = contextKey("idempotencyKey")

// RequireIdempotencyKey creates a Gin middleware for write endpoints that
// rejects requests without a usable Idempotency-Key header and stores the key
// in the request context for the handler.
func RequireIdempotencyKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Idempotency-Key header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header is required"})
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header must be at most 255 characters"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), idempotencyKeyCtxKey, key)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetIdempotencyKeyFromContext retrieves the validated idempotency key stored
// by RequireIdempotencyKey.
func GetIdempotencyKeyFromContext(c *gin.Context) (string, bool) {
	key, ok := c.Request.Context().Value(idempotencyKeyCtxKey).(string)
	return key, ok && key != ""
}
