package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"wordbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "requestId"
	identityKey     = "identity"
)

// requestIDMiddleware propagates or assigns a request id.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" || len(id) > 128 {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) accessLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Infow("http_request",
		"request_id", c.GetString(requestIDKey),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// sessionMiddleware resolves the session cookie into a service.Identity.
// The raw secret is not stored in the gin context.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	who, err := h.services.ResolveIdentity(c.Request.Context(), h.sessionSecret(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		case errors.Is(err, service.ErrUnauthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "session_resolve_failed", err)
			c.Abort()
		}
		return
	}

	c.Set(identityKey, who)
	c.Next()
}

// pageSessionMiddleware is sessionMiddleware for HTML pages: anonymous
// visitors are sent to the login form.
func (h *Handler) pageSessionMiddleware(c *gin.Context) {
	who, err := h.services.ResolveIdentity(c.Request.Context(), h.sessionSecret(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		h.logAndHTMLError(c, "session_resolve_failed", err)
		c.Abort()
		return
	}
	c.Set(identityKey, who)
	c.Next()
}

// identity returns the caller set by one of the session middlewares.
func identity(c *gin.Context) service.Identity {
	v, _ := c.Get(identityKey)
	who, _ := v.(service.Identity)
	return who
}
