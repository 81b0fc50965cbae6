package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/jhoicas/kardex-api/internal/application/dto"
)

// Renderizado CSV de reportes para exportación (Excel/hojas de cálculo).
// Separador coma, cabecera en la primera fila, montos con punto decimal.

// SalesReportCSV serializa el reporte de ventas a CSV.
func SalesReportCSV(report *dto.SalesReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"sku", "producto", "cantidad_vendida", "total_ventas", "transacciones"}); err != nil {
		return nil, err
	}
	for _, item := range report.Items {
		if err := w.Write([]string{
			item.ProductSKU,
			item.ProductName,
			strconv.Itoa(item.QuantitySold),
			item.TotalSales.StringFixed(2),
			strconv.Itoa(item.MovementCount),
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PurchasesReportCSV serializa el reporte de compras a CSV.
func PurchasesReportCSV(report *dto.PurchasesReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"sku", "producto", "cantidad_comprada", "total_compras", "transacciones"}); err != nil {
		return nil, err
	}
	for _, item := range report.Items {
		if err := w.Write([]string{
			item.ProductSKU,
			item.ProductName,
			strconv.Itoa(item.QuantityPurchased),
			item.TotalCost.StringFixed(2),
			strconv.Itoa(item.MovementCount),
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InventoryReportCSV serializa el snapshot de inventario a CSV.
func InventoryReportCSV(report *dto.InventoryReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"sku", "producto", "categoria", "stock_actual", "stock_minimo", "precio_unitario", "precio_venta", "valor_total", "estado", "unidad"}); err != nil {
		return nil, err
	}
	for _, item := range report.Items {
		if err := w.Write([]string{
			item.SKU,
			item.Name,
			item.CategoryName,
			strconv.Itoa(item.CurrentStock),
			strconv.Itoa(item.MinStock),
			item.UnitPrice.StringFixed(2),
			item.SalePrice.StringFixed(2),
			item.TotalValue.StringFixed(2),
			item.StockStatus,
			item.UnitOfMeasure,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
