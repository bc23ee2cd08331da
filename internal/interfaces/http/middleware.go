package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jhoicas/brackets-api/pkg/logger"
	"github.com/rs/zerolog"
)

const requestIDKey = "requestid"

// RequestID asigna un X-Request-ID (UUID) si el cliente no envía uno.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// RequestLogger registra una línea por petición. El nivel depende del status final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			// Resolver el status ahora para que el log refleje la respuesta real.
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		level := zerolog.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= fiber.StatusBadRequest:
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Interface("request_id", c.Locals(requestIDKey)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return nil
	}
}

// observe envuelve una operación con un log de duración y resultado.
func observe[T any](c *fiber.Ctx, log *logger.Logger, name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	ev := log.Debug()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("observation", name).
		Interface("request_id", c.Locals(requestIDKey)).
		Dur("duration", time.Since(start)).
		Msg("observación")
	return out, err
}
