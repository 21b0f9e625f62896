package repository

import (
	"context"

	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Los Get devuelven (nil, nil) si no existe; Create devuelve domain.ErrEmailAlreadyExists si el email ya existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
