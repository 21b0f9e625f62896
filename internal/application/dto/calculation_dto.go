package dto

import (
	"time"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
)

// CalculateRequest body para POST /api/calculations/preview y POST /api/calculations.
// Los montos llegan como texto libre: se eliminan comas y lo ilegible vale 0.
type CalculateRequest struct {
	Label        string `json:"label,omitempty"`
	CurrentPrice string `json:"current_price"`
	CurrentQty   string `json:"current_qty"`
	AddPrice     string `json:"add_price"`
	AddQty       string `json:"add_qty"`
}

// CalculationPreviewResponse resultado sin persistir.
type CalculationPreviewResponse struct {
	Current   averaging.Position `json:"current"`
	Add       averaging.Position `json:"add"`
	Result    averaging.Result   `json:"result"`
	Formatted calculator.View    `json:"formatted"`
}

// CalculationResponse cálculo guardado.
type CalculationResponse struct {
	ID        string             `json:"id"`
	Label     string             `json:"label"`
	Current   averaging.Position `json:"current"`
	Add       averaging.Position `json:"add"`
	Result    averaging.Result   `json:"result"`
	Formatted calculator.View    `json:"formatted"`
	CreatedAt time.Time          `json:"created_at"`
}

// CalculationListResponse listado paginado de cálculos guardados.
type CalculationListResponse struct {
	Items []CalculationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
