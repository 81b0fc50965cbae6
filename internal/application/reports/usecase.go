package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ReportUseCase reportes agregados sobre el ledger y el inventario. Son
// lecturas sin bloqueos: un movimiento en vuelo puede o no reflejarse.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, productRepo: productRepo, categoryRepo: categoryRepo}
}

// SalesReport totales de ventas (salida_venta) del período inclusivo, con
// desglose por producto. Los movimientos sin total_amount suman cantidad y
// transacciones pero $0 al monto.
func (uc *ReportUseCase) SalesReport(ctx context.Context, start, end *time.Time) (*dto.SalesReportResponse, error) {
	totals, err := uc.reportRepo.TotalsByType(ctx, domaininv.MovementSalidaVenta, start, end)
	if err != nil {
		return nil, err
	}
	byProduct, err := uc.reportRepo.TotalsByProduct(ctx, domaininv.MovementSalidaVenta, start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesReportItem, 0, len(byProduct))
	for _, p := range byProduct {
		items = append(items, dto.SalesReportItem{
			ProductSKU:    p.SKU,
			ProductName:   p.ProductName,
			QuantitySold:  p.Quantity,
			TotalSales:    p.TotalAmount,
			MovementCount: p.MovementCount,
		})
	}
	return &dto.SalesReportResponse{
		GeneratedAt:       time.Now(),
		StartDate:         start,
		EndDate:           end,
		TotalSales:        totals.TotalAmount,
		TotalQuantity:     totals.TotalQuantity,
		TotalTransactions: totals.MovementCount,
		Items:             items,
	}, nil
}

// PurchasesReport totales de compras (entrada_compra) del período inclusivo,
// con desglose por producto.
func (uc *ReportUseCase) PurchasesReport(ctx context.Context, start, end *time.Time) (*dto.PurchasesReportResponse, error) {
	totals, err := uc.reportRepo.TotalsByType(ctx, domaininv.MovementEntradaCompra, start, end)
	if err != nil {
		return nil, err
	}
	byProduct, err := uc.reportRepo.TotalsByProduct(ctx, domaininv.MovementEntradaCompra, start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchasesReportItem, 0, len(byProduct))
	for _, p := range byProduct {
		items = append(items, dto.PurchasesReportItem{
			ProductSKU:        p.SKU,
			ProductName:       p.ProductName,
			QuantityPurchased: p.Quantity,
			TotalCost:         p.TotalAmount,
			MovementCount:     p.MovementCount,
		})
	}
	return &dto.PurchasesReportResponse{
		GeneratedAt:       time.Now(),
		StartDate:         start,
		EndDate:           end,
		TotalPurchases:    totals.TotalAmount,
		TotalQuantity:     totals.TotalQuantity,
		TotalTransactions: totals.MovementCount,
		Items:             items,
	}, nil
}

// InventoryReport snapshot valorizado del inventario activo: cada producto con
// su saldo cacheado, estado de stock y valor (current_stock × unit_price).
func (uc *ReportUseCase) InventoryReport() (*dto.InventoryReportResponse, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}

	categoryNames := map[string]string{}
	categories, _, err := uc.categoryRepo.List(false, 0, 0)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	resp := &dto.InventoryReportResponse{
		GeneratedAt:   time.Now(),
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		Items:         make([]dto.InventoryReportItem, 0, len(products)),
	}
	for _, p := range products {
		status := domaininv.StockStatus(p.CurrentStock, p.MinStock)
		value := decimal.NewFromInt(int64(p.CurrentStock)).Mul(p.UnitPrice)
		switch status {
		case domaininv.StockStatusLowStock:
			resp.LowStockCount++
		case domaininv.StockStatusOutOfStock:
			resp.OutOfStockCount++
		}
		resp.TotalValue = resp.TotalValue.Add(value)
		resp.Items = append(resp.Items, dto.InventoryReportItem{
			SKU:           p.SKU,
			Name:          p.Name,
			CategoryName:  categoryNames[p.CategoryID],
			CurrentStock:  p.CurrentStock,
			MinStock:      p.MinStock,
			UnitPrice:     p.UnitPrice,
			SalePrice:     p.SalePrice,
			TotalValue:    value,
			StockStatus:   status,
			UnitOfMeasure: p.UnitOfMeasure,
		})
	}
	return resp, nil
}
