package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=50"`
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Description   string          `json:"description,omitempty" validate:"max=500"`
	CategoryID    string          `json:"category_id,omitempty" validate:"omitempty,uuid"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	UnitOfMeasure string          `json:"unit_of_measure" validate:"required,max=50"`
	MinStock      int             `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest body para PATCH /api/products/:id (campos opcionales).
// current_stock no es actualizable: solo cambia vía movimientos.
type UpdateProductRequest struct {
	SKU           *string          `json:"sku,omitempty" validate:"omitempty,min=1,max=50"`
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	CategoryID    *string          `json:"category_id,omitempty" validate:"omitempty,uuid"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	UnitOfMeasure *string          `json:"unit_of_measure,omitempty" validate:"omitempty,max=50"`
	MinStock      *int             `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	MinStock      int             `json:"min_stock"`
	CurrentStock  int             `json:"current_stock"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CreatedBy     string          `json:"created_by"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Count int               `json:"count"`
}
