package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
)

func TestSalesReportCSV(t *testing.T) {
	report := &dto.SalesReportResponse{
		GeneratedAt: time.Now(),
		TotalSales:  decimal.RequireFromString("150.50"),
		Items: []dto.SalesReportItem{
			{ProductSKU: "SKU-1", ProductName: "Café, tostado", QuantitySold: 10, TotalSales: decimal.RequireFromString("100"), MovementCount: 3},
			{ProductSKU: "SKU-2", ProductName: "Azúcar", QuantitySold: 5, TotalSales: decimal.RequireFromString("50.5"), MovementCount: 2},
		},
	}
	data, err := SalesReportCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "cabecera + una fila por producto")
	assert.Equal(t, "sku,producto,cantidad_vendida,total_ventas,transacciones", lines[0])
	assert.Equal(t, `SKU-1,"Café, tostado",10,100.00,3`, lines[1], "los campos con coma van entre comillas")
	assert.Equal(t, "SKU-2,Azúcar,5,50.50,2", lines[2], "los montos siempre con dos decimales")
}

func TestInventoryReportCSV(t *testing.T) {
	report := &dto.InventoryReportResponse{
		GeneratedAt: time.Now(),
		Items: []dto.InventoryReportItem{
			{
				SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas",
				CurrentStock: 4, MinStock: 5,
				UnitPrice: decimal.RequireFromString("2.5"), SalePrice: decimal.RequireFromString("4"),
				TotalValue: decimal.RequireFromString("10"), StockStatus: "LOW_STOCK", UnitOfMeasure: "kg",
			},
		},
	}
	data, err := InventoryReportCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "SKU-1,Café,Bebidas,4,5,2.50,4.00,10.00,LOW_STOCK,kg", lines[1])
}

func TestPurchasesReportCSV_SinItems(t *testing.T) {
	report := &dto.PurchasesReportResponse{GeneratedAt: time.Now()}
	data, err := PurchasesReportCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "sin items queda solo la cabecera")
	assert.Contains(t, lines[0], "cantidad_comprada")
}
