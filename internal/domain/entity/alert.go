package entity

import "time"

// Tipos de alerta de inventario.
const (
	AlertTypeLowStock   = "low_stock"
	AlertTypeOutOfStock = "out_of_stock"
)

// Alert representa una alerta de stock bajo o agotado para un producto.
// Ciclo de vida: se crea activa cuando el saldo entra en la banda baja; se
// resuelve manualmente o por reposición. Una alerta resuelta no se reabre:
// una recaída genera una instancia nueva.
type Alert struct {
	ID           string
	ProductID    string
	AlertType    string // low_stock, out_of_stock
	CurrentStock int    // snapshot al momento de crear la alerta
	MinStock     int    // snapshot del umbral
	Notes        string
	IsResolved   bool
	ResolvedAt   *time.Time
	ResolvedBy   string // UserID, vacío si auto-resuelta
	CreatedAt    time.Time
}
