package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"folioapi/internal/logging"
)

// Logger logs each HTTP request as one JSON line with request_id, method,
// path, status and latency (milliseconds, float).
func Logger(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := statusOf(c, err)
		entry := map[string]any{
			"request_id": GetRequestID(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
			"level":      levelFor(status),
		}
		if sid := GetSessionID(c); sid != "" {
			entry["session_id"] = sid
		}
		log.Log(entry)

		return err
	}
}

// LoggerWithWriter is Logger writing to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logging.New(w, loc))
}

func levelFor(status int) string {
	switch {
	case status >= fiber.StatusInternalServerError:
		return "error"
	case status >= fiber.StatusBadRequest:
		return "warn"
	default:
		return "info"
	}
}
