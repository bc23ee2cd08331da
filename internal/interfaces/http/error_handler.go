package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/brackets-api/internal/application/dto"
	"github.com/jhoicas/brackets-api/internal/domain"
	"github.com/jhoicas/brackets-api/pkg/logger"
)

// ProblemContentType media type de las respuestas de error.
const ProblemContentType = "application/problem+json"

// ErrorHandler traduce los errores devueltos por los handlers a un ProblemDetail.
// Validación y no encontrado responden 404; el resto 500 sin exponer la causa.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		pd := problemFor(err)
		pd.Instance = c.Path()
		if pd.Status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Interface("request_id", c.Locals(requestIDKey)).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		return c.Status(pd.Status).JSON(pd, ProblemContentType)
	}
}

func problemFor(err error) dto.ProblemDetail {
	var (
		vErr  *domain.ValidationError
		nfErr *domain.NotFoundError
		fErr  *fiber.Error
	)
	switch {
	case errors.As(err, &vErr):
		return problem(fiber.StatusNotFound, vErr.Detail)
	case errors.As(err, &nfErr):
		return problem(fiber.StatusNotFound, nfErr.Resource+" not found")
	case errors.Is(err, domain.ErrNotFound):
		return problem(fiber.StatusNotFound, "resource not found")
	case errors.As(err, &fErr):
		return problem(fErr.Code, fErr.Message)
	default:
		return problem(fiber.StatusInternalServerError, "")
	}
}

func problem(status int, detail string) dto.ProblemDetail {
	return dto.ProblemDetail{
		Type:   "about:blank",
		Title:  utils.StatusMessage(status),
		Status: status,
		Detail: detail,
	}
}
