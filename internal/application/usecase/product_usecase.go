package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock se maneja
// exclusivamente vía movimientos: nace en 0 y ningún endpoint de producto lo toca.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRunner     inventory.TxRunner
	evaluator    *inventory.AlertEvaluator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, txRunner inventory.TxRunner, evaluator *inventory.AlertEvaluator) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, txRunner: txRunner, evaluator: evaluator}
}

// Create crea un producto nuevo. El SKU es único; el stock inicial es 0 (el
// inventario inicial entra como movimiento de ajuste, no como campo del alta).
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		UnitPrice:     in.UnitPrice,
		SalePrice:     in.SalePrice,
		UnitOfMeasure: in.UnitOfMeasure,
		MinStock:      in.MinStock,
		CurrentStock:  0,
		Status:        entity.ProductStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     userID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// GetBySKU obtiene un producto por SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// Update actualiza un producto. No permite modificar CurrentStock (solo cambia
// vía movimientos). Si cambia MinStock, las alertas del producto se reevalúan
// dentro de la misma transacción con el saldo vigente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU != nil {
		existing, _ := uc.repo.GetBySKU(*in.SKU)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if in.CategoryID != nil && *in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		_ repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.AlertRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		minStockChanged := false
		if in.SKU != nil {
			product.SKU = *in.SKU
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.CategoryID != nil {
			product.CategoryID = *in.CategoryID
		}
		if in.UnitPrice != nil {
			if in.UnitPrice.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			product.UnitPrice = *in.UnitPrice
		}
		if in.SalePrice != nil {
			if in.SalePrice.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			product.SalePrice = *in.SalePrice
		}
		if in.UnitOfMeasure != nil {
			product.UnitOfMeasure = *in.UnitOfMeasure
		}
		if in.MinStock != nil && *in.MinStock != product.MinStock {
			product.MinStock = *in.MinStock
			minStockChanged = true
		}
		if in.IsActive != nil {
			if *in.IsActive {
				product.Status = entity.ProductStatusActive
			} else {
				product.Status = entity.ProductStatusInactive
			}
		}
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		// Cambiar el umbral puede activar o resolver alertas sin que haya
		// habido movimiento alguno.
		if minStockChanged {
			if err := uc.evaluator.Evaluate(alertRepo, product.ID, product.CurrentStock, product.MinStock, time.Now()); err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromProduct(updated)
	return &resp, nil
}

// List lista productos con filtros y paginación, junto al total sin paginar.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, count, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		data = append(data, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{Data: data, Count: count}, nil
}

// Delete desactiva un producto (borrado lógico). Su historial de movimientos
// se conserva íntegro.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.Status == entity.ProductStatusInactive {
		return nil
	}
	product.Status = entity.ProductStatusInactive
	product.UpdatedAt = time.Now()
	return uc.repo.Update(product)
}
