// Package memory repositorios en memoria. Útiles para tests o ejecuciones efímeras
// donde no se requiere persistencia (STORAGE_DRIVER=memory).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/calculadora-promedio/internal/domain"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
	"github.com/jhoicas/calculadora-promedio/internal/domain/repository"
)

var _ repository.CalculationRepository = (*CalculationRepo)(nil)

// CalculationRepo implementación en memoria de CalculationRepository.
type CalculationRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.Calculation
}

// NewCalculationRepository construye el repositorio vacío.
func NewCalculationRepository() *CalculationRepo {
	return &CalculationRepo{byID: make(map[string]*entity.Calculation)}
}

// Create guarda una copia del cálculo.
func (r *CalculationRepo) Create(_ context.Context, c *entity.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; ok {
		return domain.ErrInvalidInput
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

// GetByID devuelve una copia o (nil, nil) si no existe.
func (r *CalculationRepo) GetByID(_ context.Context, id string) (*entity.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// ListByUser lista por fecha de creación descendente.
func (r *CalculationRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Calculation
	for _, c := range r.byID {
		if c.UserID == userID {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

// CountByUser total de cálculos del usuario.
func (r *CalculationRepo) CountByUser(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, c := range r.byID {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

// Delete elimina por ID; no falla si no existe.
func (r *CalculationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}
