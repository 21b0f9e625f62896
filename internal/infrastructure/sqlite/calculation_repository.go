package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
	"github.com/jhoicas/calculadora-promedio/internal/domain/repository"
)

var _ repository.CalculationRepository = (*CalculationRepo)(nil)

const calculationColumns = `id, user_id, label,
	current_price, current_qty, add_price, add_qty,
	current_total, add_total, total_qty, total_invested, avg_price, created_at`

// CalculationRepo implementación de CalculationRepository sobre SQLite.
type CalculationRepo struct {
	db *sql.DB
}

// NewCalculationRepository construye el adaptador.
func NewCalculationRepository(db *sql.DB) *CalculationRepo {
	return &CalculationRepo{db: db}
}

// Create persiste un cálculo. decimal.Decimal se guarda como texto (driver.Valuer).
func (r *CalculationRepo) Create(ctx context.Context, c *entity.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (`+calculationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Label,
		c.Current.Price, c.Current.Quantity, c.Add.Price, c.Add.Quantity,
		c.Result.CurrentTotal, c.Result.AddTotal, c.Result.TotalQty, c.Result.TotalInvested, c.Result.AvgPrice,
		c.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// GetByID obtiene un cálculo; (nil, nil) si no existe.
func (r *CalculationRepo) GetByID(ctx context.Context, id string) (*entity.Calculation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+calculationColumns+` FROM calculations WHERE id = ?`, id)
	c, err := scanCalculation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calculation: %w", err)
	}
	return c, nil
}

// ListByUser lista los cálculos del usuario, más recientes primero.
func (r *CalculationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calculationColumns+` FROM calculations WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
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
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calculations WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count calculations: %w", err)
	}
	return n, nil
}

// Delete elimina un cálculo por ID.
func (r *CalculationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (*entity.Calculation, error) {
	var (
		c       entity.Calculation
		created int64
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.Label,
		&c.Current.Price, &c.Current.Quantity, &c.Add.Price, &c.Add.Quantity,
		&c.Result.CurrentTotal, &c.Result.AddTotal, &c.Result.TotalQty, &c.Result.TotalInvested, &c.Result.AvgPrice,
		&created,
	)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(0, created).UTC()
	return &c, nil
}
