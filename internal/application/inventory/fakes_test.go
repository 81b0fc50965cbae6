package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// fakeStore estado compartido en memoria para los fakes de repositorio.
type fakeStore struct {
	products  map[string]*entity.Product
	movements []*entity.InventoryMovement
	alerts    []*entity.Alert
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin tx real).
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
) error) error {
	return fn(&fakeMovementRepo{store: r.store}, &fakeProductRepo{store: r.store}, &fakeAlertRepo{store: r.store})
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.store.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.store.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, currentStock int) error {
	if p, ok := r.store.products[productID]; ok {
		p.CurrentStock = currentStock
	}
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if filter.ActiveOnly && !p.IsActive() {
			continue
		}
		if filter.Search != "" && !strings.Contains(p.SKU, filter.Search) && !strings.Contains(p.Name, filter.Search) {
			continue
		}
		list = append(list, p)
	}
	return list, len(list), nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.IsActive() {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// ── InventoryMovementRepository ───────────────────────────────────────────────

type fakeMovementRepo struct {
	store *fakeStore
}

func (r *fakeMovementRepo) Create(movement *entity.InventoryMovement) error {
	r.store.movements = append(r.store.movements, movement)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.InventoryMovement, int, error) {
	var list []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.MovementType != "" && m.MovementType != filter.MovementType {
			continue
		}
		if filter.StartDate != nil && m.MovementDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && m.MovementDate.After(*filter.EndDate) {
			continue
		}
		list = append(list, m)
	}
	sortMovementsDesc(list)
	count := len(list)
	if filter.Skip > 0 {
		if filter.Skip >= len(list) {
			list = nil
		} else {
			list = list[filter.Skip:]
		}
	}
	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}
	return list, count, nil
}

func (r *fakeMovementRepo) GetLatestByProduct(productID string) (*entity.InventoryMovement, error) {
	list, _, err := r.List(repository.MovementFilter{ProductID: productID})
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *fakeMovementRepo) ListByProductAsc(productID string) ([]*entity.InventoryMovement, error) {
	list, _, err := r.List(repository.MovementFilter{ProductID: productID})
	if err != nil {
		return nil, err
	}
	// invertir: List entrega descendente
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

func sortMovementsDesc(list []*entity.InventoryMovement) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].MovementDate.Equal(list[j].MovementDate) {
			return list[i].MovementDate.After(list[j].MovementDate)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

// ── AlertRepository ───────────────────────────────────────────────────────────

type fakeAlertRepo struct {
	store *fakeStore
}

func (r *fakeAlertRepo) Create(alert *entity.Alert) error {
	r.store.alerts = append(r.store.alerts, alert)
	return nil
}

func (r *fakeAlertRepo) GetByID(id string) (*entity.Alert, error) {
	for _, a := range r.store.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) ListActiveByProduct(productID string) ([]*entity.Alert, error) {
	var list []*entity.Alert
	for _, a := range r.store.alerts {
		if a.ProductID == productID && !a.IsResolved {
			list = append(list, a)
		}
	}
	return list, nil
}

func (r *fakeAlertRepo) List(filter repository.AlertFilter) ([]*entity.Alert, int, error) {
	var list []*entity.Alert
	for _, a := range r.store.alerts {
		if filter.Resolved != nil && a.IsResolved != *filter.Resolved {
			continue
		}
		if filter.AlertType != "" && a.AlertType != filter.AlertType {
			continue
		}
		if filter.ProductID != "" && a.ProductID != filter.ProductID {
			continue
		}
		list = append(list, a)
	}
	return list, len(list), nil
}

func (r *fakeAlertRepo) Update(alert *entity.Alert) error {
	for i, a := range r.store.alerts {
		if a.ID == alert.ID {
			r.store.alerts[i] = alert
			return nil
		}
	}
	return nil
}

// activeAlerts devuelve las alertas no resueltas del producto (helper de aserción).
func (s *fakeStore) activeAlerts(productID string) []*entity.Alert {
	var list []*entity.Alert
	for _, a := range s.alerts {
		if a.ProductID == productID && !a.IsResolved {
			list = append(list, a)
		}
	}
	return list
}

// updateAlert construye el body de PATCH /alerts/:id.
func updateAlert(isResolved *bool, notes *string) dto.UpdateAlertRequest {
	return dto.UpdateAlertRequest{IsResolved: isResolved, Notes: notes}
}

// testProduct construye un producto activo con saldo y mínimo dados.
func testProduct(id string, currentStock, minStock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          "Producto " + id,
		UnitOfMeasure: "unidad",
		MinStock:      minStock,
		CurrentStock:  currentStock,
		Status:        entity.ProductStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
