package ports

import (
	"context"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
)

// CalculationReportGenerator genera el reporte PDF de un cálculo guardado.
type CalculationReportGenerator interface {
	GenerateCalculationPDF(ctx context.Context, c *entity.Calculation, view calculator.View) ([]byte, error)
}

// CalculationExporter serializa el listado de cálculos de un usuario (ej. XML).
type CalculationExporter interface {
	ExportCalculations(ctx context.Context, userID string, list []*entity.Calculation) ([]byte, error)
}

// Metrics puerto de métricas de la aplicación. La implementación Prometheus vive en infraestructura.
type Metrics interface {
	CalculationPreviewed()
	CalculationSaved()
	InputFiltered(mode string, accepted bool)
}

// NopMetrics descarta todo.
type NopMetrics struct{}

func (NopMetrics) CalculationPreviewed()      {}
func (NopMetrics) CalculationSaved()          {}
func (NopMetrics) InputFiltered(string, bool) {}
