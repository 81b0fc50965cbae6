package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/inventory-movements.
type CreateMovementRequest struct {
	ProductID       string           `json:"product_id" validate:"required,uuid"`
	MovementType    string           `json:"movement_type" validate:"required"`
	Quantity        int              `json:"quantity" validate:"required"`
	ReferenceNumber string           `json:"reference_number,omitempty" validate:"max=100"`
	Notes           string           `json:"notes,omitempty" validate:"max=500"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	MovementDate    *time.Time       `json:"movement_date,omitempty"`
}

// MovementResponse representación pública de un movimiento del ledger.
type MovementResponse struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	MovementType    string           `json:"movement_type"`
	Quantity        int              `json:"quantity"`
	ReferenceNumber string           `json:"reference_number,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	TotalAmount     *decimal.Decimal `json:"total_amount,omitempty"`
	StockBefore     int              `json:"stock_before"`
	StockAfter      int              `json:"stock_after"`
	MovementDate    time.Time        `json:"movement_date"`
	CreatedAt       time.Time        `json:"created_at"`
	CreatedBy       string           `json:"created_by"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Data  []MovementResponse `json:"data"`
	Count int                `json:"count"`
}

// KardexResponse historial de movimientos de un producto con su estado actual.
type KardexResponse struct {
	Product        ProductResponse    `json:"product"`
	CurrentStock   int                `json:"current_stock"`
	StockStatus    string             `json:"stock_status"` // IN_STOCK, LOW_STOCK, OUT_OF_STOCK
	TotalMovements int                `json:"total_movements"`
	Movements      []MovementResponse `json:"movements"`
}

// ReconcileResponse resultado de la verificación saldo cacheado vs replay.
type ReconcileResponse struct {
	ProductID  string `json:"product_id"`
	Cached     int    `json:"cached_stock"`
	Replayed   int    `json:"replayed_stock"`
	Consistent bool   `json:"consistent"`
}
