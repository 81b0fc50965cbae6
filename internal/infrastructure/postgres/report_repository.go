package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones de solo lectura sobre el ledger. Las sumas se hacen
// en SQL: COALESCE deja en 0 el monto de los movimientos sin total_amount.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalsByType suma monto, cantidad absoluta y transacciones de un tipo de
// movimiento en un período inclusivo.
func (r *ReportRepo) TotalsByType(ctx context.Context, movementType string, start, end *time.Time) (repository.PeriodTotals, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(ABS(quantity)), 0), COUNT(*)
		FROM inventory_movements WHERE movement_type = $1`
	args := []any{movementType}
	pos := 2
	if start != nil {
		query += fmt.Sprintf(" AND movement_date >= $%d", pos)
		args = append(args, *start)
		pos++
	}
	if end != nil {
		query += fmt.Sprintf(" AND movement_date <= $%d", pos)
		args = append(args, *end)
		pos++
	}

	var totals repository.PeriodTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&totals.TotalAmount, &totals.TotalQuantity, &totals.MovementCount); err != nil {
		return repository.PeriodTotals{}, fmt.Errorf("totals by type: %w", err)
	}
	return totals, nil
}

// TotalsByProduct agrupa los totales de un tipo de movimiento por producto en
// un período inclusivo, ordenado por monto descendente.
func (r *ReportRepo) TotalsByProduct(ctx context.Context, movementType string, start, end *time.Time) ([]repository.ProductPeriodTotals, error) {
	query := `
		SELECT m.product_id, p.sku, p.name,
			COALESCE(SUM(ABS(m.quantity)), 0), COALESCE(SUM(m.total_amount), 0), COUNT(*)
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.movement_type = $1`
	args := []any{movementType}
	pos := 2
	if start != nil {
		query += fmt.Sprintf(" AND m.movement_date >= $%d", pos)
		args = append(args, *start)
		pos++
	}
	if end != nil {
		query += fmt.Sprintf(" AND m.movement_date <= $%d", pos)
		args = append(args, *end)
		pos++
	}
	query += ` GROUP BY m.product_id, p.sku, p.name ORDER BY 5 DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("totals by product: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductPeriodTotals
	for rows.Next() {
		var t repository.ProductPeriodTotals
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.ProductName, &t.Quantity, &t.TotalAmount, &t.MovementCount); err != nil {
			return nil, fmt.Errorf("scan product totals: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
