package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// AlertEvaluator mantiene el conjunto de alertas activas consistente con los
// saldos. Máquina de estados por (producto, tipo): NONE -> ACTIVE -> RESOLVED;
// una recaída crea una instancia nueva, nunca reabre la resuelta.
type AlertEvaluator struct {
	autoResolve bool // resolver alertas al recuperar saldo sobre el mínimo
}

// NewAlertEvaluator construye el evaluador. autoResolve viene de configuración
// (ALERT_AUTO_RESOLVE, por defecto activo).
func NewAlertEvaluator(autoResolve bool) *AlertEvaluator {
	return &AlertEvaluator{autoResolve: autoResolve}
}

// Evaluate ajusta las alertas del producto tras conocer su nuevo saldo.
// Se invoca dentro de la misma transacción del movimiento que lo causó, de modo
// que quien relea alertas tras registrar un movimiento vea estado consistente.
// Reglas:
//   - saldo == 0: crea OUT_OF_STOCK si no hay una activa; resuelve la LOW_STOCK
//     activa (OUT_OF_STOCK la reemplaza).
//   - 0 < saldo <= mínimo: crea LOW_STOCK solo si no hay ninguna alerta activa.
//   - saldo > mínimo: auto-resuelve las alertas activas (si la política lo permite).
func (e *AlertEvaluator) Evaluate(alertRepo repository.AlertRepository, productID string, newBalance, minStock int, now time.Time) error {
	active, err := alertRepo.ListActiveByProduct(productID)
	if err != nil {
		return err
	}

	switch {
	case newBalance == 0:
		hasOut := false
		for _, a := range active {
			switch a.AlertType {
			case entity.AlertTypeOutOfStock:
				hasOut = true
			case entity.AlertTypeLowStock:
				if err := e.resolve(alertRepo, a, "Reemplazada por alerta de stock agotado", now); err != nil {
					return err
				}
			}
		}
		if !hasOut {
			return e.create(alertRepo, productID, entity.AlertTypeOutOfStock, newBalance, minStock, now)
		}
		return nil

	case newBalance <= minStock:
		if len(active) > 0 {
			return nil // no duplicar: ya hay una alerta activa para el producto
		}
		return e.create(alertRepo, productID, entity.AlertTypeLowStock, newBalance, minStock, now)

	default:
		if !e.autoResolve {
			return nil
		}
		for _, a := range active {
			if err := e.resolve(alertRepo, a, "Auto-resuelta: stock repuesto sobre el mínimo", now); err != nil {
				return err
			}
		}
		return nil
	}
}

func (e *AlertEvaluator) create(alertRepo repository.AlertRepository, productID, alertType string, currentStock, minStock int, now time.Time) error {
	return alertRepo.Create(&entity.Alert{
		ID:           uuid.New().String(),
		ProductID:    productID,
		AlertType:    alertType,
		CurrentStock: currentStock,
		MinStock:     minStock,
		Notes:        fmt.Sprintf("Alerta automática: stock en %d (mínimo: %d)", currentStock, minStock),
		IsResolved:   false,
		CreatedAt:    now,
	})
}

func (e *AlertEvaluator) resolve(alertRepo repository.AlertRepository, alert *entity.Alert, notes string, now time.Time) error {
	alert.IsResolved = true
	resolvedAt := now
	alert.ResolvedAt = &resolvedAt
	alert.Notes = notes
	return alertRepo.Update(alert)
}
