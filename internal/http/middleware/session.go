package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// SessionHeader overrides the session cookie, for clients without cookies.
	SessionHeader = "X-Session-ID"
	// SessionLocalKey stores the session id in Fiber's context locals.
	SessionLocalKey = "session_id"
	// DefaultSessionCookie is the cookie name used when none is configured.
	DefaultSessionCookie = "folio_session"

	sessionMaxAge = 30 * 24 * time.Hour
)

// Session assigns every visitor a session id. The X-Session-ID header wins
// over the cookie; values that are not UUIDs are replaced with a new one.
// The id is echoed in both the header and the cookie.
func Session(cookieName string) fiber.Handler {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return func(c *fiber.Ctx) error {
		id := c.Get(SessionHeader)
		if id == "" {
			id = c.Cookies(cookieName)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		} else {
			// Header and cookie values alias fasthttp buffers that are
			// reused after the request; the id outlives it in the registry.
			id = utils.CopyString(id)
		}

		c.Locals(SessionLocalKey, id)
		c.Set(SessionHeader, id)
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(sessionMaxAge.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.Next()
	}
}

// GetSessionID returns the session id stored by Session.
func GetSessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionLocalKey).(string)
	return id
}
