package inventory

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// KardexUseCase resuelve el historial (kardex) de un producto y la proyección
// de su saldo desde el ledger.
type KardexUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) *KardexUseCase {
	return &KardexUseCase{productRepo: productRepo, movRepo: movRepo}
}

// Kardex devuelve el producto con su historial de movimientos paginado
// (movement_date DESC, created_at DESC) acotado opcionalmente a un rango de
// fechas inclusivo. TotalMovements es el total sin paginar del rango.
func (uc *KardexUseCase) Kardex(productID string, start, end *time.Time, skip, limit int) (*dto.KardexResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movements, count, err := uc.movRepo.List(repository.MovementFilter{
		ProductID: productID,
		StartDate: start,
		EndDate:   end,
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		data = append(data, *ToMovementResponse(m))
	}
	return &dto.KardexResponse{
		Product:        dto.FromProduct(product),
		CurrentStock:   product.CurrentStock,
		StockStatus:    domaininv.StockStatus(product.CurrentStock, product.MinStock),
		TotalMovements: count,
		Movements:      data,
	}, nil
}

// KardexBySKU resuelve el kardex a partir del SKU del producto.
func (uc *KardexUseCase) KardexBySKU(sku string, start, end *time.Time, skip, limit int) (*dto.KardexResponse, error) {
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.Kardex(product.ID, start, end, skip, limit)
}

// Project deriva el saldo del producto desde el ledger: el stock_after de su
// movimiento más reciente, o 0 si no tiene movimientos. No toca la proyección
// cacheada.
func (uc *KardexUseCase) Project(productID string) (int, error) {
	latest, err := uc.movRepo.GetLatestByProduct(productID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 0, nil
	}
	return latest.StockAfter, nil
}
