package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportItem desglose por producto del reporte de ventas.
type SalesReportItem struct {
	ProductSKU    string          `json:"product_sku"`
	ProductName   string          `json:"product_name"`
	QuantitySold  int             `json:"quantity_sold"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	MovementCount int             `json:"movement_count"`
}

// SalesReportResponse reporte de ventas del período [start, end] inclusive.
type SalesReportResponse struct {
	GeneratedAt       time.Time         `json:"generated_at"`
	StartDate         *time.Time        `json:"start_date,omitempty"`
	EndDate           *time.Time        `json:"end_date,omitempty"`
	TotalSales        decimal.Decimal   `json:"total_sales"`
	TotalQuantity     int               `json:"total_quantity"`
	TotalTransactions int               `json:"total_transactions"`
	Items             []SalesReportItem `json:"items"`
}

// PurchasesReportItem desglose por producto del reporte de compras.
type PurchasesReportItem struct {
	ProductSKU        string          `json:"product_sku"`
	ProductName       string          `json:"product_name"`
	QuantityPurchased int             `json:"quantity_purchased"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	MovementCount     int             `json:"movement_count"`
}

// PurchasesReportResponse reporte de compras del período [start, end] inclusive.
type PurchasesReportResponse struct {
	GeneratedAt       time.Time             `json:"generated_at"`
	StartDate         *time.Time            `json:"start_date,omitempty"`
	EndDate           *time.Time            `json:"end_date,omitempty"`
	TotalPurchases    decimal.Decimal       `json:"total_purchases"`
	TotalQuantity     int                   `json:"total_quantity"`
	TotalTransactions int                   `json:"total_transactions"`
	Items             []PurchasesReportItem `json:"items"`
}

// InventoryReportItem fila del reporte de inventario valorizado.
type InventoryReportItem struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CategoryName  string          `json:"category_name,omitempty"`
	CurrentStock  int             `json:"current_stock"`
	MinStock      int             `json:"min_stock"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	TotalValue    decimal.Decimal `json:"total_value"` // current_stock × unit_price
	StockStatus   string          `json:"stock_status"`
	UnitOfMeasure string          `json:"unit_of_measure"`
}

// InventoryReportResponse snapshot valorizado del inventario activo.
type InventoryReportResponse struct {
	GeneratedAt     time.Time             `json:"generated_at"`
	TotalProducts   int                   `json:"total_products"`
	TotalValue      decimal.Decimal       `json:"total_value"`
	LowStockCount   int                   `json:"low_stock_count"`
	OutOfStockCount int                   `json:"out_of_stock_count"`
	Items           []InventoryReportItem `json:"items"`
}
