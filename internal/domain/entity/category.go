package entity

import "time"

// Estados de categoría (borrado lógico, igual que productos).
const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
)

// Category representa una categoría de productos (datos de referencia).
type Category struct {
	ID          string
	Name        string // único
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string // UserID
}
