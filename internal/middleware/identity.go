package middleware

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/vilanovabarber/booking-api/internal/auth"
	"github.com/vilanovabarber/booking-api/internal/config"
	"github.com/vilanovabarber/booking-api/internal/domain/identity"
	"github.com/vilanovabarber/booking-api/internal/httperr"
)

const (
	SessionCookie = "session_token"
	BarberCookie  = "barber_session"

	ContextIdentity = "identity"
)

// ResolveIdentity maps the inbound cookies to a single tagged identity.
// The client token channel wins over the barber channel when both are
// present. Malformed or expired credentials degrade to anonymous; the
// resolver itself never rejects a request.
func ResolveIdentity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextIdentity, resolve(c, cfg))
		c.Next()
	}
}

func resolve(c *gin.Context, cfg *config.Config) identity.Identity {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		if user, ok := auth.VerifySession(cfg.SessionSecret, token); ok {
			return identity.ForUser(user)
		}
	}

	if raw, err := c.Cookie(BarberCookie); err == nil && raw != "" {
		var barber identity.Barber
		if err := json.Unmarshal([]byte(raw), &barber); err == nil && barber.ID != 0 {
			return identity.ForBarber(barber)
		}
	}

	return identity.Anonymous()
}

// CurrentIdentity reads the resolved identity off the request context.
func CurrentIdentity(c *gin.Context) identity.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		if ident, ok := v.(identity.Identity); ok {
			return ident
		}
	}
	return identity.Anonymous()
}

// RequireUser rejects callers without a valid client session.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsUser() {
			httperr.Unauthorized(c, "unauthorized", "Faça login para continuar.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireBarber rejects callers without a barber session. Any logged-in
// barber qualifies; schedule actions are not scoped per barber.
func RequireBarber() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsBarber() {
			httperr.Unauthorized(c, "unauthorized", "Sessão de barbeiro necessária.")
			c.Abort()
			return
		}
		c.Next()
	}
}
