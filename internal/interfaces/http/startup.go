package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/brackets-api/internal/application/usecase"
	"github.com/jhoicas/brackets-api/pkg/logger"
)

// LogCustomersOnListen devuelve un hook OnListen que registra todos los clientes al arrancar.
// Un error al listar solo se advierte; el servidor sigue en marcha.
func LogCustomersOnListen(uc *usecase.CustomerUseCase, log *logger.Logger) fiber.OnListenHandler {
	return func(fiber.ListenData) error {
		list, err := uc.FindAll(context.Background())
		if err != nil {
			log.Warn().Err(err).Msg("no se pudieron listar los clientes al arrancar")
			return nil
		}
		for _, c := range list {
			log.Info().Int64("id", c.ID).Str("name", c.Name).Msg("customer")
		}
		return nil
	}
}
