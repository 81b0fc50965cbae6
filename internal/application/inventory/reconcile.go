package inventory

import (
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

// ReconcileUseCase verifica que el saldo cacheado de un producto coincida con
// el replay completo de su ledger. Solo reporta: nunca corrige la proyección,
// una discrepancia es un bug que hay que investigar, no maquillar.
type ReconcileUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
	log         *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{productRepo: productRepo, movRepo: movRepo, log: log}
}

// Reconcile repliega el historial del producto desde cero aplicando cada
// cantidad con signo y compara el resultado contra current_stock. Devuelve el
// detalle de la comparación; si hay discrepancia el error es un
// *domain.ReconciliationError con ambos valores.
func (uc *ReconcileUseCase) Reconcile(productID string) (*dto.ReconcileResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movRepo.ListByProductAsc(productID)
	if err != nil {
		return nil, err
	}

	replayed := 0
	for _, m := range movements {
		signed, err := domaininv.SignedQuantity(m.MovementType, m.Quantity)
		if err != nil {
			return nil, err
		}
		replayed += signed
	}

	resp := &dto.ReconcileResponse{
		ProductID:  productID,
		Cached:     product.CurrentStock,
		Replayed:   replayed,
		Consistent: product.CurrentStock == replayed,
	}
	if !resp.Consistent {
		uc.log.Error().
			Str("product_id", productID).
			Int("cached_stock", product.CurrentStock).
			Int("replayed_stock", replayed).
			Int("movements", len(movements)).
			Msg("Discrepancia entre saldo cacheado y replay del ledger")
		return resp, &domain.ReconciliationError{
			ProductID: productID,
			Cached:    product.CurrentStock,
			Replayed:  replayed,
		}
	}
	return resp, nil
}
