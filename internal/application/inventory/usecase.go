package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// MovementUseCase registra movimientos del ledger de forma transaccional
// (bloqueo de fila por producto + Commit/Rollback) y resuelve las consultas de
// historial. Los movimientos son inmutables: no existe Update ni Delete.
type MovementUseCase struct {
	txRunner  TxRunner
	movRepo   repository.InventoryMovementRepository // lecturas fuera de tx
	evaluator *AlertEvaluator
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.InventoryMovementRepository, evaluator *AlertEvaluator) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo, evaluator: evaluator}
}

// MovementInput entrada para registrar un movimiento de inventario.
type MovementInput struct {
	UserID          string
	ProductID       string
	MovementType    string
	Quantity        int
	ReferenceNumber string
	Notes           string
	UnitPrice       *decimal.Decimal
	MovementDate    *time.Time
}

// RegisterMovement valida la entrada, abre una transacción, bloquea la fila del
// producto (SELECT FOR UPDATE acotado por lock_timeout), calcula
// stock_before/stock_after según la tabla de sentidos, persiste el movimiento,
// actualiza el saldo cacheado y evalúa alertas — todo o nada.
// Dos movimientos concurrentes sobre el mismo producto se serializan por el
// bloqueo de fila; movimientos de productos distintos corren en paralelo.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := time.Now()
	movementDate := now
	if in.MovementDate != nil {
		movementDate = *in.MovementDate
	}

	var created *entity.InventoryMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.AlertRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Un producto desactivado no admite salidas ni ajustes, pero sí
		// entradas (mercancía en tránsito o devoluciones pueden llegar después
		// de la desactivación).
		if !product.IsActive() && !domaininv.IsEntry(in.MovementType) {
			return domain.ErrProductInactive
		}

		signed, err := domaininv.SignedQuantity(in.MovementType, in.Quantity)
		if err != nil {
			return err
		}
		stockBefore := product.CurrentStock
		stockAfter := stockBefore + signed
		if stockAfter < 0 {
			return domain.ErrInsufficientStock
		}

		movement := &entity.InventoryMovement{
			ID:              uuid.New().String(),
			ProductID:       in.ProductID,
			MovementType:    in.MovementType,
			Quantity:        in.Quantity,
			ReferenceNumber: in.ReferenceNumber,
			Notes:           in.Notes,
			UnitPrice:       in.UnitPrice,
			TotalAmount:     totalAmount(in.Quantity, in.UnitPrice),
			StockBefore:     stockBefore,
			StockAfter:      stockAfter,
			MovementDate:    movementDate,
			CreatedAt:       now,
			CreatedBy:       in.UserID,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, stockAfter); err != nil {
			return err
		}
		// Evaluación síncrona dentro de la misma tx: quien relea alertas tras
		// el 201 ve el estado derivado de este movimiento.
		if err := uc.evaluator.Evaluate(alertRepo, product.ID, stockAfter, product.MinStock, now); err != nil {
			return err
		}
		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(created), nil
}

// List devuelve movimientos filtrados, ordenados por movement_date DESC con
// desempate estable por created_at DESC, más el total sin paginar.
func (uc *MovementUseCase) List(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.MovementType != "" && !domaininv.IsValidType(filter.MovementType) {
		return nil, domain.ErrInvalidInput
	}
	movements, count, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		data = append(data, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{Data: data, Count: count}, nil
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	movement, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return ToMovementResponse(movement), nil
}

// validateInput aplica las reglas de campos por tipo de movimiento:
// referencia obligatoria en compras y ventas, precio unitario obligatorio en
// compras, notas obligatorias en ajustes (deben explicar el motivo).
func validateInput(in MovementInput) error {
	if in.ProductID == "" || in.Quantity == 0 {
		return domain.ErrInvalidInput
	}
	if !domaininv.IsValidType(in.MovementType) {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && !in.UnitPrice.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	switch in.MovementType {
	case domaininv.MovementEntradaCompra:
		if in.ReferenceNumber == "" || in.UnitPrice == nil {
			return domain.ErrInvalidInput
		}
	case domaininv.MovementSalidaVenta:
		if in.ReferenceNumber == "" {
			return domain.ErrInvalidInput
		}
	case domaininv.MovementAjusteConteo, domaininv.MovementAjusteMerma:
		if in.Notes == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// totalAmount calcula |quantity| × unit_price; nil cuando no hay precio (el
// movimiento aporta cantidad pero $0 a los reportes monetarios).
func totalAmount(quantity int, unitPrice *decimal.Decimal) *decimal.Decimal {
	if unitPrice == nil {
		return nil
	}
	qty := quantity
	if qty < 0 {
		qty = -qty
	}
	total := decimal.NewFromInt(int64(qty)).Mul(*unitPrice)
	return &total
}

// ToMovementResponse mapea la entidad al DTO público.
func ToMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		MovementType:    m.MovementType,
		Quantity:        m.Quantity,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		UnitPrice:       m.UnitPrice,
		TotalAmount:     m.TotalAmount,
		StockBefore:     m.StockBefore,
		StockAfter:      m.StockAfter,
		MovementDate:    m.MovementDate,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}
