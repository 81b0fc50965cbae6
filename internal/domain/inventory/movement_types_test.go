package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/kardex-api/internal/domain"
)

func TestSignedQuantity_TablaDeSentidos(t *testing.T) {
	cases := []struct {
		name         string
		movementType string
		quantity     int
		want         int
		wantErr      bool
	}{
		{"entrada compra suma", MovementEntradaCompra, 10, 10, false},
		{"devolucion cliente suma", MovementDevolucionCliente, 3, 3, false},
		{"salida venta resta", MovementSalidaVenta, 4, -4, false},
		{"ajuste merma resta", MovementAjusteMerma, 2, -2, false},
		{"devolucion proveedor resta", MovementDevolucionProveedor, 5, -5, false},
		{"ajuste conteo positivo conserva signo", MovementAjusteConteo, 7, 7, false},
		{"ajuste conteo negativo conserva signo", MovementAjusteConteo, -7, -7, false},
		{"cantidad cero es invalida", MovementEntradaCompra, 0, 0, true},
		{"ajuste conteo cero es invalido", MovementAjusteConteo, 0, 0, true},
		{"entrada negativa es invalida", MovementEntradaCompra, -1, 0, true},
		{"salida negativa es invalida", MovementSalidaVenta, -1, 0, true},
		{"tipo desconocido es invalido", "transferencia", 1, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SignedQuantity(tc.movementType, tc.quantity)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsValidType_ConjuntoCerrado(t *testing.T) {
	for _, mt := range []string{
		MovementEntradaCompra, MovementSalidaVenta, MovementAjusteConteo,
		MovementAjusteMerma, MovementDevolucionCliente, MovementDevolucionProveedor,
	} {
		assert.True(t, IsValidType(mt), mt)
	}
	assert.False(t, IsValidType(""))
	assert.False(t, IsValidType("ENTRADA_COMPRA"), "los tipos distinguen mayúsculas")
	assert.False(t, IsValidType("traslado"))
}

func TestDirectionOf(t *testing.T) {
	d, err := DirectionOf(MovementEntradaCompra)
	assert.NoError(t, err)
	assert.Equal(t, DirectionEntry, d)

	d, err = DirectionOf(MovementSalidaVenta)
	assert.NoError(t, err)
	assert.Equal(t, DirectionExit, d)

	d, err = DirectionOf(MovementAjusteConteo)
	assert.NoError(t, err)
	assert.Equal(t, DirectionSigned, d)

	_, err = DirectionOf("otro")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		minStock int
		want     string
	}{
		{"cero siempre agotado", 0, 10, StockStatusOutOfStock},
		{"cero con minimo cero", 0, 0, StockStatusOutOfStock},
		{"igual al minimo es bajo", 10, 10, StockStatusLowStock},
		{"bajo el minimo es bajo", 3, 10, StockStatusLowStock},
		{"sobre el minimo esta en stock", 11, 10, StockStatusInStock},
		{"minimo cero y saldo positivo", 1, 0, StockStatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StockStatus(tc.current, tc.minStock))
		})
	}
}
