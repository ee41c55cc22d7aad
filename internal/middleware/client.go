package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureClientID attaches a client identity to the request context. The
// browser sends its ID via header or query once it has one; first-time
// clients get a fresh one assigned. There is no authentication here, only a
// stable key for websocket subscriptions.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
