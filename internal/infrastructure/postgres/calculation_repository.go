package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/calculadora-promedio/internal/domain"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
	"github.com/jhoicas/calculadora-promedio/internal/domain/repository"
)

var _ repository.CalculationRepository = (*CalculationRepo)(nil)

const calculationColumns = `id, user_id, label,
	current_price, current_qty, add_price, add_qty,
	current_total, add_total, total_qty, total_invested, avg_price, created_at`

// CalculationRepo implementación de CalculationRepository sobre PostgreSQL.
// Los montos son NUMERIC y se leen como decimal.Decimal gracias al codec registrado en NewPool.
type CalculationRepo struct {
	q Querier
}

// NewCalculationRepository construye el adaptador. Pasar pool o tx.
func NewCalculationRepository(q Querier) *CalculationRepo {
	return &CalculationRepo{q: q}
}

// Create persiste un cálculo con su resultado.
func (r *CalculationRepo) Create(ctx context.Context, c *entity.Calculation) error {
	query := `
		INSERT INTO calculations (` + calculationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Label,
		c.Current.Price, c.Current.Quantity, c.Add.Price, c.Add.Quantity,
		c.Result.CurrentTotal, c.Result.AddTotal, c.Result.TotalQty, c.Result.TotalInvested, c.Result.AvgPrice,
		c.CreatedAt,
	)
	switch {
	case err == nil:
	case isUniqueViolation(err):
		return domain.ErrInvalidInput
	case isForeignKeyViolation(err):
		return domain.ErrUserNotFound
	default:
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// GetByID obtiene un cálculo por ID; (nil, nil) si no existe.
func (r *CalculationRepo) GetByID(ctx context.Context, id string) (*entity.Calculation, error) {
	query := `SELECT ` + calculationColumns + ` FROM calculations WHERE id = $1`
	c, err := scanCalculation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calculation: %w", err)
	}
	return c, nil
}

// ListByUser lista los cálculos del usuario, más recientes primero.
func (r *CalculationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Calculation, error) {
	query := `
		SELECT ` + calculationColumns + `
		FROM calculations WHERE user_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByUser total de cálculos del usuario.
func (r *CalculationRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM calculations WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count calculations: %w", err)
	}
	return n, nil
}

// Delete elimina un cálculo por ID.
func (r *CalculationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM calculations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	return nil
}

func scanCalculation(row pgx.Row) (*entity.Calculation, error) {
	var c entity.Calculation
	err := row.Scan(
		&c.ID, &c.UserID, &c.Label,
		&c.Current.Price, &c.Current.Quantity, &c.Add.Price, &c.Add.Quantity,
		&c.Result.CurrentTotal, &c.Result.AddTotal, &c.Result.TotalQty, &c.Result.TotalInvested, &c.Result.AvgPrice,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
