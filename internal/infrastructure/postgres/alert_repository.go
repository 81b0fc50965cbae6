package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, product_id, alert_type, current_stock, min_stock, notes, is_resolved, resolved_at, resolved_by, created_at`

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta nueva.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO stock_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.AlertType, alert.CurrentStock, alert.MinStock,
		nullable(alert.Notes), alert.IsResolved, alert.ResolvedAt, nullable(alert.ResolvedBy), alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE id = $1`
	a, err := scanAlertRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// ListActiveByProduct devuelve las alertas no resueltas de un producto.
func (r *AlertRepo) ListActiveByProduct(productID string) ([]*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts
		WHERE product_id = $1 AND is_resolved = false ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlertRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// List lista alertas filtradas (más recientes primero) con el total sin paginar.
func (r *AlertRepo) List(filter repository.AlertFilter) ([]*entity.Alert, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.Resolved != nil {
		where += fmt.Sprintf(" AND is_resolved = $%d", pos)
		args = append(args, *filter.Resolved)
		pos++
	}
	if filter.AlertType != "" {
		where += fmt.Sprintf(" AND alert_type = $%d", pos)
		args = append(args, filter.AlertType)
		pos++
	}
	if filter.ProductID != "" {
		where += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}

	var count int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM stock_alerts"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count alerts: %w", err)
	}

	query := `SELECT ` + alertColumns + ` FROM stock_alerts` + where + " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Skip)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlertRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, count, rows.Err()
}

// Update actualiza el estado de resolución y las notas de una alerta.
func (r *AlertRepo) Update(alert *entity.Alert) error {
	query := `
		UPDATE stock_alerts
		SET notes = $2, is_resolved = $3, resolved_at = $4, resolved_by = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, nullable(alert.Notes), alert.IsResolved, alert.ResolvedAt, nullable(alert.ResolvedBy),
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	return nil
}

func scanAlertRow(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	var notes, resolvedBy *string
	if err := row.Scan(
		&a.ID, &a.ProductID, &a.AlertType, &a.CurrentStock, &a.MinStock,
		&notes, &a.IsResolved, &a.ResolvedAt, &resolvedBy, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if notes != nil {
		a.Notes = *notes
	}
	if resolvedBy != nil {
		a.ResolvedBy = *resolvedBy
	}
	return &a, nil
}
