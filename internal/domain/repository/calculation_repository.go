package repository

import (
	"context"

	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
)

// CalculationRepository define el puerto de persistencia para cálculos guardados (DIP).
// GetByID devuelve (nil, nil) si no existe.
type CalculationRepository interface {
	Create(ctx context.Context, c *entity.Calculation) error
	GetByID(ctx context.Context, id string) (*entity.Calculation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Calculation, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id string) error
}
