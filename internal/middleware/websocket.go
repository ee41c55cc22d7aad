package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade gates the websocket endpoint: only genuine upgrade
// requests proceed, and the client ID is carried into the post-upgrade
// connection context, which is distinct from the upgrade request's context.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		clientID := c.Locals("clientID")
		if clientID == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}
		c.Locals("wsClientID", clientID)

		return c.Next()
	}
}
