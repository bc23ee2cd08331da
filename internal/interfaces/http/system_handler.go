package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/brackets-api/internal/application/dto"
	"github.com/swaggo/swag"

	// Registra la especificación OpenAPI generada por swag.
	_ "github.com/jhoicas/brackets-api/docs"
)

// HealthHandler GET /health
func HealthHandler(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: appName})
	}
}

// OpenAPIHandler GET /openapi.json sirve la especificación registrada en swag.
func OpenAPIHandler(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(doc)
}
