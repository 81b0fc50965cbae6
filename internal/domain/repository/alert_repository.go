package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// AlertFilter filtros de listado de alertas.
type AlertFilter struct {
	Resolved  *bool
	AlertType string
	ProductID string
	Skip      int
	Limit     int
}

// AlertRepository define el puerto de persistencia para alertas de stock.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	GetByID(id string) (*entity.Alert, error)
	// ListActiveByProduct devuelve las alertas no resueltas del producto.
	ListActiveByProduct(productID string) ([]*entity.Alert, error)
	List(filter AlertFilter) ([]*entity.Alert, int, error)
	Update(alert *entity.Alert) error
}
