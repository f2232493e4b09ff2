package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey       = "userId"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// requireUser rejects the request unless it carries a valid bearer token.
func (h *Handler) requireUser(c *gin.Context) {
	userID, err := h.services.CurrentUserID(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.writeError(c, "auth_rejected", err, "path", c.FullPath())
		return
	}

	// store in Gin context
	c.Set(userIDKey, userID)
	c.Next()
}

// requestID propagates or assigns an X-Request-ID.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}

	kv := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", c.GetString(requestIDKey),
	}
	if uid, ok := c.Get(userIDKey); ok {
		kv = append(kv, "user_id", uid)
	}
	h.log.Infow("http_request", kv...)
}
