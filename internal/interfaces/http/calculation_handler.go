package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/calculadora-promedio/internal/application/dto"
	"github.com/jhoicas/calculadora-promedio/internal/application/usecase"
)

// CalculationHandler maneja el cálculo de promedio: vista previa (público) y cálculos guardados (protegido).
type CalculationHandler struct {
	uc *usecase.CalculationUseCase
}

// NewCalculationHandler construye el handler.
func NewCalculationHandler(uc *usecase.CalculationUseCase) *CalculationHandler {
	return &CalculationHandler{uc: uc}
}

// Preview godoc
// @Summary      Calcular precio promedio (sin guardar)
// @Description  Montos como texto libre: se eliminan comas y lo ilegible vale 0. Nunca falla por montos.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRequest  true  "precio y cantidad actuales y adicionales"
// @Success      200   {object}  dto.CalculationPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculations/preview [post]
func (h *CalculationHandler) Preview(c *fiber.Ctx) error {
	var in dto.CalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Preview(in))
}

// Create godoc
// @Summary      Guardar cálculo
// @Tags         calculations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRequest  true  "montos y etiqueta opcional"
// @Success      201   {object}  dto.CalculationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculations [post]
func (h *CalculationHandler) Create(c *fiber.Ctx) error {
	var in dto.CalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cálculos guardados
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CalculationListResponse
// @Router       /api/calculations [get]
func (h *CalculationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", dto.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cálculo por ID
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cálculo"
// @Success      200  {object}  dto.CalculationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/{id} [get]
func (h *CalculationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar cálculo
// @Tags         calculations
// @Security     Bearer
// @Param        id   path  string  true  "ID del cálculo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/{id} [delete]
func (h *CalculationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Reporte PDF de un cálculo
// @Tags         calculations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del cálculo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/{id}/pdf [get]
func (h *CalculationHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ExportPDF(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// ExportXML godoc
// @Summary      Exportar cálculos guardados en XML
// @Tags         calculations
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/calculations/export.xml [get]
func (h *CalculationHandler) ExportXML(c *fiber.Ctx) error {
	out, err := h.uc.ExportAll(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="calculos.xml"`)
	return c.Send(out)
}
