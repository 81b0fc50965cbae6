package repository

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// MovementFilter filtros de listado de movimientos.
type MovementFilter struct {
	ProductID    string
	MovementType string
	StartDate    *time.Time
	EndDate      *time.Time
	Skip         int
	Limit        int
}

// InventoryMovementRepository define el puerto de persistencia para el ledger.
// El ledger es append-only: no expone Update ni Delete.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	// List devuelve movimientos ordenados por movement_date DESC con desempate
	// por created_at DESC (orden estable para paginación) y el total sin paginar.
	List(filter MovementFilter) ([]*entity.InventoryMovement, int, error)
	// GetLatestByProduct devuelve el movimiento más reciente del producto
	// (movement_date, created_at) o nil si no hay movimientos.
	GetLatestByProduct(productID string) (*entity.InventoryMovement, error)
	// ListByProductAsc devuelve el historial completo del producto en orden de
	// aplicación (movement_date ASC, created_at ASC), para replay/auditoría.
	ListByProductAsc(productID string) ([]*entity.InventoryMovement, error)
}
