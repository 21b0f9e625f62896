package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/application/dto"
	"github.com/jhoicas/calculadora-promedio/internal/application/ports"
	"github.com/jhoicas/calculadora-promedio/internal/domain"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
	"github.com/jhoicas/calculadora-promedio/internal/domain/repository"
)

// maxLabelLength longitud máxima de la etiqueta de un cálculo guardado.
const maxLabelLength = 120

// CalculationUseCase casos de uso del calculador: vista previa, guardar, listar, borrar y exportar.
type CalculationUseCase struct {
	repo     repository.CalculationRepository
	settings *calculator.SettingsStore
	report   ports.CalculationReportGenerator
	exporter ports.CalculationExporter
	metrics  ports.Metrics
	now      func() time.Time
}

// NewCalculationUseCase construye el caso de uso. report, exporter y metrics pueden ser nil.
func NewCalculationUseCase(
	repo repository.CalculationRepository,
	settings *calculator.SettingsStore,
	report ports.CalculationReportGenerator,
	exporter ports.CalculationExporter,
	metrics ports.Metrics,
) *CalculationUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if settings == nil {
		settings = calculator.NewSettingsStore(calculator.DefaultSettings())
	}
	return &CalculationUseCase{
		repo:     repo,
		settings: settings,
		report:   report,
		exporter: exporter,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Preview calcula sin persistir. Nunca falla: los montos ilegibles valen 0.
func (uc *CalculationUseCase) Preview(in dto.CalculateRequest) dto.CalculationPreviewResponse {
	current, add := positions(in)
	res := averaging.Calculate(current, add)
	uc.metrics.CalculationPreviewed()
	return dto.CalculationPreviewResponse{
		Current:   current,
		Add:       add,
		Result:    res,
		Formatted: calculator.FormatResult(res, uc.settings.Get()),
	}
}

// Save persiste el cálculo para el usuario (botón "guardar").
func (uc *CalculationUseCase) Save(ctx context.Context, userID string, in dto.CalculateRequest) (*dto.CalculationResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	label := strings.TrimSpace(in.Label)
	if len([]rune(label)) > maxLabelLength {
		return nil, domain.ErrInvalidInput
	}
	current, add := positions(in)
	c := &entity.Calculation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Label:     label,
		Current:   current,
		Add:       add,
		CreatedAt: uc.now().UTC(),
	}
	c.Recompute()
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("guardar cálculo: %w", err)
	}
	uc.metrics.CalculationSaved()
	return uc.toResponse(c), nil
}

// GetByID obtiene un cálculo del usuario. ErrNotFound si no existe, ErrForbidden si es de otro usuario.
func (uc *CalculationUseCase) GetByID(ctx context.Context, userID, id string) (*dto.CalculationResponse, error) {
	c, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// List lista los cálculos del usuario, más recientes primero (pantalla "lista").
func (uc *CalculationUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.CalculationListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar cálculos: %w", err)
	}
	total, err := uc.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("contar cálculos: %w", err)
	}
	items := make([]dto.CalculationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *uc.toResponse(c))
	}
	return &dto.CalculationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete borra un cálculo del usuario.
func (uc *CalculationUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("borrar cálculo: %w", err)
	}
	return nil
}

// ExportPDF genera el reporte PDF de un cálculo guardado.
func (uc *CalculationUseCase) ExportPDF(ctx context.Context, userID, id string) (pdf []byte, filename string, err error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("reporte PDF no configurado")
	}
	c, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	view := calculator.FormatResult(c.Result, uc.settings.Get())
	pdf, err = uc.report.GenerateCalculationPDF(ctx, c, view)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("calculo-%s.pdf", c.ID), nil
}

// ExportAll serializa todos los cálculos del usuario con el exportador configurado.
func (uc *CalculationUseCase) ExportAll(ctx context.Context, userID string) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("exportador no configurado")
	}
	var all []*entity.Calculation
	for offset := 0; ; offset += dto.MaxLimit {
		list, err := uc.repo.ListByUser(ctx, userID, dto.MaxLimit, offset)
		if err != nil {
			return nil, fmt.Errorf("listar cálculos: %w", err)
		}
		all = append(all, list...)
		if len(list) < dto.MaxLimit {
			break
		}
	}
	return uc.exporter.ExportCalculations(ctx, userID, all)
}

func (uc *CalculationUseCase) owned(ctx context.Context, userID, id string) (*entity.Calculation, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cálculo: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func (uc *CalculationUseCase) toResponse(c *entity.Calculation) *dto.CalculationResponse {
	return &dto.CalculationResponse{
		ID:        c.ID,
		Label:     c.Label,
		Current:   c.Current,
		Add:       c.Add,
		Result:    c.Result,
		Formatted: calculator.FormatResult(c.Result, uc.settings.Get()),
		CreatedAt: c.CreatedAt,
	}
}

func positions(in dto.CalculateRequest) (current, add averaging.Position) {
	current = averaging.Position{
		Price:    averaging.ParseAmount(in.CurrentPrice),
		Quantity: averaging.ParseAmount(in.CurrentQty),
	}
	add = averaging.Position{
		Price:    averaging.ParseAmount(in.AddPrice),
		Quantity: averaging.ParseAmount(in.AddQty),
	}
	return current, add
}
