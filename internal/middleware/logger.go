// Package middleware contains HTTP middleware for the Players API.
// Middleware sits between the HTTP server and route handlers. It runs on every
// request that passes through it, which makes it the place for cross-cutting
// concerns like request logging and turning stray errors into JSON responses.
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// RequestID returns Fiber's request id middleware. The id is read from the
// X-Request-ID header when the client sends one and generated otherwise; either way
// it is echoed back and stored in c.Locals for RequestLogger.
func RequestID() fiber.Handler {
	return requestid.New()
}

// RequestLogger returns a middleware that writes one structured log line per request.
//
// It must be registered before recover so a panic, already turned into an error by
// the time it gets here, is logged with status 500 like any other failure.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// When a handler returns an error, the ErrorHandler has not written the final
		// status yet. Derive it from the error instead of logging a stale 200.
		status := c.Response().StatusCode()
		if err != nil {
			status = StatusFromError(err)
		}

		// 5xx is a server fault, 4xx a client fault, anything else is routine.
		var e *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			e = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			e = log.Warn()
		default:
			e = log.Info()
		}

		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("request_id", rid)
		}

		e.
			Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Method()).
			Str("uri", c.OriginalURL()).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Msg("API")

		return err
	}
}

// StatusFromError maps an error returned through the handler chain to the status
// the ErrorHandler will answer with.
func StatusFromError(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
