package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/brackets-api/internal/application/usecase"
	"github.com/jhoicas/brackets-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	CustomerUC *usecase.CustomerUseCase
	BracketUC  *usecase.BracketUseCase
	Log        *logger.Logger
}

// NewApp crea la aplicación Fiber con el manejador de errores y los middlewares globales.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(log),
	})
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	// recover va después del logger para que un panic también deje su línea de log con status 500.
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.AppName))
	app.Get("/openapi.json", OpenAPIHandler)

	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id/bracket", customerHandler.Bracket)
	customers.Get("/:name", customerHandler.ByName)

	brackets := app.Group("/brackets")
	bracketHandler := NewBracketHandler(deps.BracketUC)
	brackets.Get("/", bracketHandler.List)
	brackets.Get("/:name", bracketHandler.ByName)
}
