package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

func newMovementUC(store *fakeStore, autoResolve bool) *appinv.MovementUseCase {
	return appinv.NewMovementUseCase(
		&fakeTxRunner{store: store},
		&fakeMovementRepo{store: store},
		appinv.NewAlertEvaluator(autoResolve),
	)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRegisterMovement_EntradaCompra(t *testing.T) {
	store := newFakeStore(testProduct("p1", 0, 5))
	uc := newMovementUC(store, true)

	out, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:          "u1",
		ProductID:       "p1",
		MovementType:    domaininv.MovementEntradaCompra,
		Quantity:        10,
		ReferenceNumber: "OC-001",
		UnitPrice:       decPtr("5.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.StockBefore, "el primer movimiento parte de saldo 0")
	assert.Equal(t, 10, out.StockAfter)
	require.NotNil(t, out.TotalAmount)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("55.00")),
		"total_amount = |cantidad| × precio unitario")
	assert.Equal(t, 10, store.products["p1"].CurrentStock, "el saldo cacheado refleja el movimiento")
	assert.Len(t, store.movements, 1)
}

func TestRegisterMovement_EncadenaStockBeforeAfter(t *testing.T) {
	store := newFakeStore(testProduct("p1", 0, 0))
	uc := newMovementUC(store, true)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementEntradaCompra,
		Quantity: 10, ReferenceNumber: "OC-001", UnitPrice: decPtr("2"),
	})
	require.NoError(t, err)

	out, err := uc.RegisterMovement(ctx, appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 4, ReferenceNumber: "FV-001", UnitPrice: decPtr("3"),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, out.StockBefore, "stock_before encadena con el stock_after anterior")
	assert.Equal(t, 6, out.StockAfter)
	assert.Equal(t, 6, store.products["p1"].CurrentStock)
}

func TestRegisterMovement_SalidaSinStockSuficiente(t *testing.T) {
	store := newFakeStore(testProduct("p1", 3, 0))
	uc := newMovementUC(store, true)

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 5, ReferenceNumber: "FV-002",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, store.movements, "un movimiento rechazado no se persiste")
	assert.Equal(t, 3, store.products["p1"].CurrentStock, "el saldo queda intacto")
}

func TestRegisterMovement_SalidaExacta_DejaStockEnCero(t *testing.T) {
	store := newFakeStore(testProduct("p1", 5, 0))
	uc := newMovementUC(store, true)

	out, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 5, ReferenceNumber: "FV-003",
	})
	require.NoError(t, err, "vaciar el stock exacto es válido")
	assert.Equal(t, 0, out.StockAfter)
}

func TestRegisterMovement_VentaSinPrecio_NoAportaMonto(t *testing.T) {
	store := newFakeStore(testProduct("p1", 10, 0))
	uc := newMovementUC(store, true)

	out, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 2, ReferenceNumber: "FV-004",
	})
	require.NoError(t, err)
	assert.Nil(t, out.UnitPrice)
	assert.Nil(t, out.TotalAmount, "sin precio unitario el movimiento no aporta monto")
	assert.Equal(t, 8, out.StockAfter, "la cantidad sí afecta el saldo")
}

func TestRegisterMovement_AjusteConteoNegativo(t *testing.T) {
	store := newFakeStore(testProduct("p1", 10, 0))
	uc := newMovementUC(store, true)

	out, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementAjusteConteo,
		Quantity: -3, Notes: "conteo físico: faltan 3 unidades",
	})
	require.NoError(t, err)
	assert.Equal(t, -3, out.Quantity, "la cantidad del ajuste conserva su signo")
	assert.Equal(t, 7, out.StockAfter)
}

func TestRegisterMovement_AjusteConteoQueDejaNegativo(t *testing.T) {
	store := newFakeStore(testProduct("p1", 2, 0))
	uc := newMovementUC(store, true)

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementAjusteConteo,
		Quantity: -5, Notes: "conteo físico",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "el saldo nunca queda negativo, ni por ajuste")
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	store := newFakeStore(testProduct("p1", 10, 0))
	uc := newMovementUC(store, true)
	ctx := context.Background()

	cases := []struct {
		name string
		in   appinv.MovementInput
	}{
		{"tipo desconocido", appinv.MovementInput{ProductID: "p1", MovementType: "traslado", Quantity: 1}},
		{"entrada compra sin referencia", appinv.MovementInput{ProductID: "p1", MovementType: domaininv.MovementEntradaCompra, Quantity: 1, UnitPrice: decPtr("1")}},
		{"entrada compra sin precio", appinv.MovementInput{ProductID: "p1", MovementType: domaininv.MovementEntradaCompra, Quantity: 1, ReferenceNumber: "OC-1"}},
		{"salida venta sin referencia", appinv.MovementInput{ProductID: "p1", MovementType: domaininv.MovementSalidaVenta, Quantity: 1}},
		{"ajuste sin notas", appinv.MovementInput{ProductID: "p1", MovementType: domaininv.MovementAjusteMerma, Quantity: 1}},
		{"precio no positivo", appinv.MovementInput{ProductID: "p1", MovementType: domaininv.MovementSalidaVenta, Quantity: 1, ReferenceNumber: "FV-1", UnitPrice: decPtr("0")}},
		{"cantidad cero", appinv.MovementInput{ProductID: "p1", MovementType: domaininv.MovementDevolucionCliente, Quantity: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.UserID = "u1"
			_, err := uc.RegisterMovement(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.movements)
		})
	}
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newMovementUC(store, true)

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID: "u1", ProductID: "nope", MovementType: domaininv.MovementDevolucionCliente, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_ProductoInactivo(t *testing.T) {
	p := testProduct("p1", 10, 0)
	p.Status = entity.ProductStatusInactive
	store := newFakeStore(p)
	uc := newMovementUC(store, true)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 1, ReferenceNumber: "FV-1",
	})
	assert.ErrorIs(t, err, domain.ErrProductInactive, "producto inactivo no admite salidas")

	_, err = uc.RegisterMovement(ctx, appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementEntradaCompra,
		Quantity: 5, ReferenceNumber: "OC-9", UnitPrice: decPtr("1"),
	})
	assert.NoError(t, err, "las entradas siguen permitidas sobre un producto inactivo")
}

func TestRegisterMovement_FechaPorDefectoYExplicita(t *testing.T) {
	store := newFakeStore(testProduct("p1", 10, 0))
	uc := newMovementUC(store, true)
	ctx := context.Background()

	explicit := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out, err := uc.RegisterMovement(ctx, appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 1, ReferenceNumber: "FV-1", MovementDate: &explicit,
	})
	require.NoError(t, err)
	assert.True(t, out.MovementDate.Equal(explicit), "movement_date explícito se respeta")

	out, err = uc.RegisterMovement(ctx, appinv.MovementInput{
		UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta,
		Quantity: 1, ReferenceNumber: "FV-2",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), out.MovementDate, time.Minute, "sin fecha explícita se usa el reloj del servidor")
}

func TestList_OrdenDescendenteYFiltro(t *testing.T) {
	store := newFakeStore(testProduct("p1", 100, 0), testProduct("p2", 100, 0))
	uc := newMovementUC(store, true)
	ctx := context.Background()

	d1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []appinv.MovementInput{
		{UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta, Quantity: 1, ReferenceNumber: "FV-1", MovementDate: &d1},
		{UserID: "u1", ProductID: "p2", MovementType: domaininv.MovementSalidaVenta, Quantity: 1, ReferenceNumber: "FV-2", MovementDate: &d3},
		{UserID: "u1", ProductID: "p1", MovementType: domaininv.MovementSalidaVenta, Quantity: 1, ReferenceNumber: "FV-3", MovementDate: &d2},
	} {
		_, err := uc.RegisterMovement(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.List(repository.MovementFilter{ProductID: "p1"})
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "FV-3", out.Data[0].ReferenceNumber, "más reciente primero")
	assert.Equal(t, "FV-1", out.Data[1].ReferenceNumber)

	_, err = uc.List(repository.MovementFilter{MovementType: "traslado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "filtrar por tipo desconocido es un error")
}
