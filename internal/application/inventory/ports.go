package inventory

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el ledger: movimiento + saldo cacheado + alertas se
// confirman o revierten juntos (nunca se observa un movimiento aplicado a medias).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
