package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/brackets-api/internal/application/dto"
	"github.com/jhoicas/brackets-api/internal/application/usecase"
	"github.com/jhoicas/brackets-api/internal/domain"
	"github.com/jhoicas/brackets-api/pkg/logger"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      500  {object}  dto.ProblemDetail
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// ByName godoc
// @Summary      Obtener cliente por nombre
// @Description  El nombre debe empezar con mayúscula; si no, responde 404 sin consultar la base.
// @Tags         customers
// @Produce      json
// @Param        name  path  string  true  "Nombre exacto del cliente"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ProblemDetail
// @Router       /customers/{name} [get]
func (h *CustomerHandler) ByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := domain.ValidateCustomerName(name); err != nil {
		return err
	}
	customer, err := observe(c, h.log, "byName", func() (*dto.CustomerResponse, error) {
		return h.uc.ByName(c.UserContext(), name)
	})
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Bracket godoc
// @Summary      Bracket de un cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.BracketResponse
// @Failure      400  {object}  dto.ProblemDetail
// @Failure      404  {object}  dto.ProblemDetail
// @Router       /customers/{id}/bracket [get]
func (h *CustomerHandler) Bracket(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id debe ser numérico")
	}
	bracket, err := h.uc.GetCustomerBracket(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(bracket)
}
