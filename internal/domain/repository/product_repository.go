package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	ActiveOnly   bool
	CategoryID   string
	Search       string // busca por SKU o nombre
	LowStockOnly bool
	Skip         int
	Limit        int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); es el
	// ámbito de exclusión por producto del ledger. Usar solo dentro de una tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo la proyección cacheada del saldo.
	UpdateStock(productID string, currentStock int) error
	List(filter ProductFilter) ([]*entity.Product, int, error)
	ListActive() ([]*entity.Product, error)
}
