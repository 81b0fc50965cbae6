package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
)

// venta registra una salida_venta del producto por la cantidad dada.
func venta(t *testing.T, uc *appinv.MovementUseCase, productID string, qty int) {
	t.Helper()
	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: productID, MovementType: domaininv.MovementSalidaVenta,
		Quantity: qty, ReferenceNumber: "FV-X",
	})
	require.NoError(t, err)
}

// compra registra una entrada_compra del producto por la cantidad dada.
func compra(t *testing.T, uc *appinv.MovementUseCase, productID string, qty int) {
	t.Helper()
	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: productID, MovementType: domaininv.MovementEntradaCompra,
		Quantity: qty, ReferenceNumber: "OC-X", UnitPrice: decPtr("1"),
	})
	require.NoError(t, err)
}

func TestEvaluate_CruzarElMinimoCreaLowStock(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 4) // 8 -> 4, bajo el mínimo de 5

	active := store.activeAlerts("p1")
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertTypeLowStock, active[0].AlertType)
	assert.Equal(t, 4, active[0].CurrentStock)
	assert.Equal(t, 5, active[0].MinStock)
}

func TestEvaluate_NoDuplicaAlertasActivas(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 4) // 4: crea low_stock
	venta(t, uc, "p1", 1) // 3: sigue bajo el mínimo, no debe crear otra
	venta(t, uc, "p1", 1) // 2

	assert.Len(t, store.activeAlerts("p1"), 1, "una sola alerta activa aunque el saldo siga bajo")
}

func TestEvaluate_LlegarACeroSuperponeOutOfStock(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 4) // low_stock activa
	venta(t, uc, "p1", 4) // 0: out_of_stock reemplaza a low_stock

	active := store.activeAlerts("p1")
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertTypeOutOfStock, active[0].AlertType)

	// La low_stock quedó resuelta, no eliminada
	var resolved int
	for _, a := range store.alerts {
		if a.IsResolved {
			resolved++
			assert.Equal(t, entity.AlertTypeLowStock, a.AlertType)
			assert.NotNil(t, a.ResolvedAt)
		}
	}
	assert.Equal(t, 1, resolved)
}

func TestEvaluate_CeroDirectoSoloOutOfStock(t *testing.T) {
	store := newFakeStore(testProduct("p1", 5, 3))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 5) // 5 -> 0 sin pasar por el rango bajo

	active := store.activeAlerts("p1")
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertTypeOutOfStock, active[0].AlertType)
}

func TestEvaluate_ReponerSobreElMinimoAutoResuelve(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 5)  // 3: low_stock activa
	compra(t, uc, "p1", 7) // 10 > 5: auto-resolver

	assert.Empty(t, store.activeAlerts("p1"))
	require.Len(t, store.alerts, 1)
	assert.True(t, store.alerts[0].IsResolved)
}

func TestEvaluate_AutoResolveDesactivado(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	uc := newMovementUC(store, false)

	venta(t, uc, "p1", 5)  // 3: low_stock activa
	compra(t, uc, "p1", 7) // 10 > 5, pero la política no auto-resuelve

	assert.Len(t, store.activeAlerts("p1"), 1, "con auto-resolve apagado la alerta queda para resolución manual")
}

func TestEvaluate_RecaidaCreaAlertaNueva(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 5)  // 3: low_stock #1
	compra(t, uc, "p1", 7) // 10: resuelta
	venta(t, uc, "p1", 6)  // 4: low_stock #2

	active := store.activeAlerts("p1")
	require.Len(t, active, 1)
	assert.Len(t, store.alerts, 2, "la recaída crea una instancia nueva, no reabre la resuelta")
	assert.NotEqual(t, store.alerts[0].ID, store.alerts[1].ID)
}

func TestEvaluate_EquilibrioEnElMinimoEsLowStock(t *testing.T) {
	store := newFakeStore(testProduct("p1", 6, 5))
	uc := newMovementUC(store, true)

	venta(t, uc, "p1", 1) // 5 == mínimo

	active := store.activeAlerts("p1")
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertTypeLowStock, active[0].AlertType)
}

func TestAlertUseCase_ResolucionManual(t *testing.T) {
	store := newFakeStore(testProduct("p1", 8, 5))
	movUC := newMovementUC(store, false)
	alertUC := appinv.NewAlertUseCase(&fakeAlertRepo{store: store})

	venta(t, movUC, "p1", 4)
	require.Len(t, store.activeAlerts("p1"), 1)
	alertID := store.alerts[0].ID

	resolved := true
	out, err := alertUC.Resolve(alertID, "admin-1", updateAlert(&resolved, nil))
	require.NoError(t, err)
	assert.True(t, out.IsResolved)
	assert.Equal(t, "admin-1", out.ResolvedBy)
	assert.NotNil(t, out.ResolvedAt)

	// Resolver de nuevo es idempotente
	out, err = alertUC.Resolve(alertID, "admin-2", updateAlert(&resolved, nil))
	require.NoError(t, err)
	assert.Equal(t, "admin-1", out.ResolvedBy, "la segunda resolución no pisa a la primera")

	// Reabrir no está permitido
	reopen := false
	_, err = alertUC.Resolve(alertID, "admin-1", updateAlert(&reopen, nil))
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestAlertUseCase_ResolverInexistente(t *testing.T) {
	store := newFakeStore()
	alertUC := appinv.NewAlertUseCase(&fakeAlertRepo{store: store})

	resolved := true
	_, err := alertUC.Resolve("nope", "u1", updateAlert(&resolved, nil))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
