package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductInactive    = errors.New("producto inactivo")
	ErrAlreadyResolved    = errors.New("alerta ya resuelta")
)

// ReconciliationError indica que el saldo cacheado de un producto no coincide
// con el saldo reconstruido desde el historial de movimientos. Nunca se corrige
// en silencio: se reporta al operador.
type ReconciliationError struct {
	ProductID string
	Cached    int
	Replayed  int
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliación producto %s: saldo cacheado %d != saldo recalculado %d",
		e.ProductID, e.Cached, e.Replayed)
}
