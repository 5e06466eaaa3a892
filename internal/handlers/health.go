package handlers

import "github.com/gofiber/fiber/v2"

// Fixed bodies for the root and fallback routes.
const (
	MsgAlive         = "Players API running"
	MsgRouteNotFound = "Route not found"
)

// Root handles GET /.
// It only says the process is up. There is no database query behind it, so load
// balancers and uptime monitors can hit it as often as they like.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": MsgAlive})
}

// NotFound answers every method+path combination no route matched.
// It is mounted last with app.Use, so it only runs when nothing else did.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: MsgRouteNotFound})
}
