package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto (borrado lógico: se desactiva, nunca se elimina).
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto o SKU del inventario.
// CurrentStock es una proyección cacheada del ledger de movimientos: debe ser
// siempre igual al stock_after del movimiento más reciente del producto.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	CategoryID    string          // vacío si no tiene categoría
	UnitPrice     decimal.Decimal // precio de costo/compra
	SalePrice     decimal.Decimal // precio de venta
	UnitOfMeasure string          // ej: unidad, kg, litro
	MinStock      int             // umbral para alertas de stock bajo
	CurrentStock  int             // derivado del ledger, no autoritativo
	Status        string          // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string // UserID
}

// IsActive indica si el producto acepta movimientos normales.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
