package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, product_id, movement_type, quantity, reference_number, notes, unit_price, total_amount, stock_before, stock_after, movement_date, created_at, created_by`

// InventoryMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: este adaptador no emite UPDATE ni DELETE.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.MovementType, movement.Quantity,
		nullable(movement.ReferenceNumber), nullable(movement.Notes),
		movement.UnitPrice, movement.TotalAmount,
		movement.StockBefore, movement.StockAfter,
		movement.MovementDate, movement.CreatedAt, nullable(movement.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *InventoryMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE id = $1`
	m, err := scanMovementRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos filtrados en orden movement_date DESC, created_at DESC
// (estable para paginación) junto con el total sin paginar.
func (r *InventoryMovementRepo) List(filter repository.MovementFilter) ([]*entity.InventoryMovement, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		where += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.MovementType != "" {
		where += fmt.Sprintf(" AND movement_type = $%d", pos)
		args = append(args, filter.MovementType)
		pos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND movement_date >= $%d", pos)
		args = append(args, *filter.StartDate)
		pos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND movement_date <= $%d", pos)
		args = append(args, *filter.EndDate)
		pos++
	}

	var count int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM inventory_movements"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `SELECT ` + movementColumns + ` FROM inventory_movements` + where +
		" ORDER BY movement_date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Skip)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovementRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, count, rows.Err()
}

// GetLatestByProduct devuelve el movimiento más reciente del producto o nil.
func (r *InventoryMovementRepo) GetLatestByProduct(productID string) (*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements
		WHERE product_id = $1 ORDER BY movement_date DESC, created_at DESC LIMIT 1`
	m, err := scanMovementRow(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest movement: %w", err)
	}
	return m, nil
}

// ListByProductAsc devuelve el historial completo del producto en orden de
// aplicación, para replay/auditoría.
func (r *InventoryMovementRepo) ListByProductAsc(productID string) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements
		WHERE product_id = $1 ORDER BY movement_date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovementRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovementRow(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	var referenceNumber, notes, createdBy *string
	if err := row.Scan(
		&m.ID, &m.ProductID, &m.MovementType, &m.Quantity,
		&referenceNumber, &notes, &m.UnitPrice, &m.TotalAmount,
		&m.StockBefore, &m.StockAfter, &m.MovementDate, &m.CreatedAt, &createdBy,
	); err != nil {
		return nil, err
	}
	if referenceNumber != nil {
		m.ReferenceNumber = *referenceNumber
	}
	if notes != nil {
		m.Notes = *notes
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}
