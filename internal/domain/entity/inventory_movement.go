package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryMovement representa un movimiento del ledger de inventario.
// Es inmutable una vez creado: las correcciones se registran como movimientos
// compensatorios nuevos, nunca como UPDATE o DELETE.
type InventoryMovement struct {
	ID              string
	ProductID       string
	MovementType    string // ver internal/domain/inventory.MovementType*
	Quantity        int    // positivo; AJUSTE_CONTEO admite signo
	ReferenceNumber string
	Notes           string
	UnitPrice       *decimal.Decimal // opcional; obligatorio en compras
	TotalAmount     *decimal.Decimal // |quantity| × unit_price cuando hay precio
	StockBefore     int
	StockAfter      int
	MovementDate    time.Time // fecha del movimiento (default: creación)
	CreatedAt       time.Time
	CreatedBy       string // UserID
}
