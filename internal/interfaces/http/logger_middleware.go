package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/autotech/taller-api/pkg/logger"
)

// RequestLogger registra cada petición con un identificador único.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)
		c.Locals("requestID", requestID)

		reqLog := log.WithRequest(requestID)
		c.SetUserContext(logger.IntoContext(c.UserContext(), reqLog))

		start := time.Now()
		err := c.Next()

		event := reqLog.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = reqLog.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
