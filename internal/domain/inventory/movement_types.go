package inventory

import "github.com/jhoicas/kardex-api/internal/domain"

// Tipos de movimiento de inventario (conjunto cerrado).
const (
	MovementEntradaCompra       = "entrada_compra"       // compra a proveedor
	MovementSalidaVenta         = "salida_venta"         // venta a cliente
	MovementAjusteConteo        = "ajuste_conteo"        // ajuste por conteo físico (con signo)
	MovementAjusteMerma         = "ajuste_merma"         // merma, daño o vencimiento
	MovementDevolucionCliente   = "devolucion_cliente"   // devolución de cliente
	MovementDevolucionProveedor = "devolucion_proveedor" // devolución a proveedor
)

// Direction indica el sentido de un tipo de movimiento sobre el saldo.
type Direction int

const (
	DirectionEntry  Direction = 1  // suma al saldo
	DirectionExit   Direction = -1 // resta del saldo
	DirectionSigned Direction = 0  // el signo lo aporta la cantidad (ajuste por conteo)
)

// directions tabla cerrada tipo → sentido.
var directions = map[string]Direction{
	MovementEntradaCompra:       DirectionEntry,
	MovementDevolucionCliente:   DirectionEntry,
	MovementSalidaVenta:         DirectionExit,
	MovementAjusteMerma:         DirectionExit,
	MovementDevolucionProveedor: DirectionExit,
	MovementAjusteConteo:        DirectionSigned,
}

// IsValidType indica si el tipo pertenece al conjunto cerrado.
func IsValidType(movementType string) bool {
	_, ok := directions[movementType]
	return ok
}

// DirectionOf devuelve el sentido de un tipo de movimiento.
func DirectionOf(movementType string) (Direction, error) {
	d, ok := directions[movementType]
	if !ok {
		return 0, domain.ErrInvalidInput
	}
	return d, nil
}

// IsEntry indica si el tipo suma stock (para el tipo con signo depende de la cantidad).
func IsEntry(movementType string) bool {
	return directions[movementType] == DirectionEntry
}

// SignedQuantity devuelve la cantidad con signo que el movimiento aplica al saldo:
// +quantity para entradas, -quantity para salidas. Para ajuste por conteo la
// cantidad ya viene con signo. La cantidad debe ser != 0 y, salvo en el ajuste
// por conteo, estrictamente positiva.
func SignedQuantity(movementType string, quantity int) (int, error) {
	d, ok := directions[movementType]
	if !ok {
		return 0, domain.ErrInvalidInput
	}
	if quantity == 0 {
		return 0, domain.ErrInvalidInput
	}
	switch d {
	case DirectionEntry:
		if quantity < 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	case DirectionExit:
		if quantity < 0 {
			return 0, domain.ErrInvalidInput
		}
		return -quantity, nil
	default:
		return quantity, nil
	}
}

// Estados de stock derivados del saldo y el umbral mínimo.
const (
	StockStatusInStock    = "IN_STOCK"
	StockStatusLowStock   = "LOW_STOCK"
	StockStatusOutOfStock = "OUT_OF_STOCK"
)

// StockStatus clasifica un saldo frente al stock mínimo del producto.
func StockStatus(currentStock, minStock int) string {
	switch {
	case currentStock == 0:
		return StockStatusOutOfStock
	case currentStock <= minStock:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}
