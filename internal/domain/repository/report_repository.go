package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTotals totales de un tipo de movimiento en un período.
// Los movimientos sin total_amount aportan 0 al total monetario pero sí suman
// cantidad y transacciones.
type PeriodTotals struct {
	TotalAmount   decimal.Decimal
	TotalQuantity int
	MovementCount int
}

// ProductPeriodTotals totales agrupados por producto en un período.
type ProductPeriodTotals struct {
	ProductID     string
	SKU           string
	ProductName   string
	Quantity      int
	TotalAmount   decimal.Decimal
	MovementCount int
}

// ReportRepository consultas de agregación de solo lectura sobre el ledger.
// Corren sin bloqueos y pueden observar estado pre o post de un movimiento en
// vuelo (consistencia eventual, no snapshot).
type ReportRepository interface {
	TotalsByType(ctx context.Context, movementType string, start, end *time.Time) (PeriodTotals, error)
	TotalsByProduct(ctx context.Context, movementType string, start, end *time.Time) ([]ProductPeriodTotals, error)
}
