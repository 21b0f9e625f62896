package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-promedio/internal/domain"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/memory"
)

func newCalc(id, userID string, at time.Time) *entity.Calculation {
	c := &entity.Calculation{
		ID:        id,
		UserID:    userID,
		Current:   averaging.Position{Price: decimal.NewFromInt(1000), Quantity: decimal.NewFromInt(50)},
		Add:       averaging.Position{Price: decimal.NewFromInt(800), Quantity: decimal.NewFromInt(50)},
		CreatedAt: at,
	}
	c.Recompute()
	return c
}

func TestCalculationRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCalculationRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newCalc("a", "u1", base)))
	require.NoError(t, repo.Create(ctx, newCalc("b", "u1", base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, newCalc("c", "u2", base)))
	assert.ErrorIs(t, repo.Create(ctx, newCalc("a", "u1", base)), domain.ErrInvalidInput)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Result.AvgPrice.Equal(decimal.NewFromInt(900)))

	// la copia devuelta no altera lo guardado
	got.Label = "cambiado"
	again, _ := repo.GetByID(ctx, "a")
	assert.Empty(t, again.Label)

	missing, err := repo.GetByID(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.ListByUser(ctx, "u1", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "más reciente primero")

	page, err := repo.ListByUser(ctx, "u1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)

	n, err := repo.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.Delete(ctx, "a"))
	n, _ = repo.CountByUser(ctx, "u1")
	assert.Equal(t, 1, n)
}

func TestUserRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	u := &entity.User{ID: "u1", Email: "a@b.co", Role: entity.RoleUser, Status: entity.StatusActive}

	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "u2", Email: "a@b.co"}), domain.ErrEmailAlreadyExists)

	byEmail, err := repo.GetByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.ID)

	none, err := repo.GetByEmail(ctx, "x@y.co")
	require.NoError(t, err)
	assert.Nil(t, none)
}
