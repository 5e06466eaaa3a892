package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// MsgInternalError is what the client sees for any error that is not a *fiber.Error.
const MsgInternalError = "Internal server error."

// ErrorHandler is the final funnel for errors that reach Fiber instead of being
// answered by a handler: recovered panics, body limit violations, unknown methods.
// Every response it writes is a JSON {"error": "..."} body.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := MsgInternalError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
			if message == "" {
				message = http.StatusText(status)
			}
		} else {
			// Keep the real error in the logs; never send it to the client.
			log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
		}

		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
