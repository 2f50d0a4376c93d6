package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserID   = "userId"
	ctxUsername = "username"

	requestIDHeader = "X-Request-ID"
)

// userIdMiddleware verifies the bearer credential and stores the caller's
// identity in the gin context. No other source of identity is trusted.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenRequired})
		return
	}

	identity, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgInvalidToken})
		return
	}

	c.Set(ctxUserID, identity.ID)
	c.Set(ctxUsername, identity.Username)
	c.Next()
}

// bearerToken extracts the token from "Bearer <token>"; anything else yields "".
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// callerID returns the id set by userIdMiddleware.
func callerID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}

// requestLogger tags every request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Header(requestIDHeader, reqID)

	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"user_id", c.GetInt(ctxUserID),
	)
}

// recoverServerError turns a handler panic into the generic 500 body.
func (h *Handler) recoverServerError(c *gin.Context, recovered any) {
	if h.log != nil {
		h.log.Errorw("http_panic", "path", c.FullPath(), "panic", recovered)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgServerError})
}
