package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/calculadora-promedio/internal/application/dto"
	"github.com/jhoicas/calculadora-promedio/internal/application/usecase"
)

// InputHandler expone el saneamiento de campos numéricos para clientes remotos.
type InputHandler struct {
	uc *usecase.InputUseCase
}

// NewInputHandler construye el handler.
func NewInputHandler(uc *usecase.InputUseCase) *InputHandler {
	return &InputHandler{uc: uc}
}

// Sanitize godoc
// @Summary      Reescribir texto numérico
// @Description  Descarta caracteres no numéricos, fusiona puntos extra y trunca los decimales.
// @Tags         inputs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SanitizeRequest  true  "texto y decimales opcionales"
// @Success      200   {object}  dto.SanitizeResponse
// @Router       /api/inputs/sanitize [post]
func (h *InputHandler) Sanitize(c *fiber.Ctx) error {
	var in dto.SanitizeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Sanitize(in))
}

// Filter godoc
// @Summary      Evaluar una edición de teclado
// @Description  Acepta o rechaza la edición; si se rechaza el texto queda igual.
// @Tags         inputs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterRequest  true  "edición"
// @Success      200   {object}  dto.FilterResponse
// @Router       /api/inputs/filter [post]
func (h *InputHandler) Filter(c *fiber.Ctx) error {
	var in dto.FilterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Filter(in))
}
