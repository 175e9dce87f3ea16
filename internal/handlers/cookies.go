package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultCookieName = "pss_session"

// SessionCookie describes the cookie carrying the session secret. It is
// always HttpOnly; Secure and SameSite are opt-in.
type SessionCookie struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

func (sc SessionCookie) withDefaults() SessionCookie {
	if sc.Name == "" {
		sc.Name = defaultCookieName
	}
	return sc
}

// ParseSameSite maps a config value ("", lax, strict, none) to http.SameSite.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return 0
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, secret string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    secret,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
}

// sessionSecret returns the raw cookie value, or "" if absent.
func (h *Handler) sessionSecret(c *gin.Context) string {
	v, err := c.Cookie(h.cookie.Name)
	if err != nil {
		return ""
	}
	return v
}
