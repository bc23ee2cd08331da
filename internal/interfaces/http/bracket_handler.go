package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/brackets-api/internal/application/usecase"
)

// BracketHandler maneja las peticiones HTTP de brackets.
type BracketHandler struct {
	uc *usecase.BracketUseCase
}

// NewBracketHandler construye el handler.
func NewBracketHandler(uc *usecase.BracketUseCase) *BracketHandler {
	return &BracketHandler{uc: uc}
}

// List godoc
// @Summary      Listar brackets
// @Tags         brackets
// @Produce      json
// @Success      200  {array}   dto.BracketResponse
// @Failure      500  {object}  dto.ProblemDetail
// @Router       /brackets [get]
func (h *BracketHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// ByName godoc
// @Summary      Obtener bracket por nombre
// @Tags         brackets
// @Produce      json
// @Param        name  path  string  true  "Nombre exacto del bracket"
// @Success      200   {object}  dto.BracketResponse
// @Failure      404   {object}  dto.ProblemDetail
// @Router       /brackets/{name} [get]
func (h *BracketHandler) ByName(c *fiber.Ctx) error {
	bracket, err := h.uc.ByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(bracket)
}
