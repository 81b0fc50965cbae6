package inventory

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// AlertUseCase consultas y resolución manual de alertas de stock. La creación
// de alertas es exclusiva del evaluador; aquí solo se listan y se resuelven.
type AlertUseCase struct {
	alertRepo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alertRepo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo}
}

// List devuelve alertas filtradas con el total sin paginar.
func (uc *AlertUseCase) List(filter repository.AlertFilter) (*dto.AlertListResponse, error) {
	if filter.AlertType != "" &&
		filter.AlertType != entity.AlertTypeLowStock &&
		filter.AlertType != entity.AlertTypeOutOfStock {
		return nil, domain.ErrInvalidInput
	}
	alerts, count, err := uc.alertRepo.List(filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		data = append(data, dto.FromAlert(a))
	}
	return &dto.AlertListResponse{Data: data, Count: count}, nil
}

// ListActive devuelve solo las alertas no resueltas.
func (uc *AlertUseCase) ListActive(productID string, skip, limit int) (*dto.AlertListResponse, error) {
	resolved := false
	return uc.List(repository.AlertFilter{
		Resolved:  &resolved,
		ProductID: productID,
		Skip:      skip,
		Limit:     limit,
	})
}

// GetByID obtiene una alerta por ID.
func (uc *AlertUseCase) GetByID(id string) (*dto.AlertResponse, error) {
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromAlert(alert)
	return &resp, nil
}

// Resolve marca una alerta como resuelta manualmente, registrando quién la
// resolvió. Resolver una alerta ya resuelta es idempotente; reabrirla no está
// permitido (una recaída genera una alerta nueva, no reabre la vieja).
func (uc *AlertUseCase) Resolve(id, userID string, req dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}

	if req.IsResolved != nil && !*req.IsResolved {
		if alert.IsResolved {
			return nil, domain.ErrAlreadyResolved
		}
		// is_resolved=false sobre una alerta activa no cambia nada.
	}

	changed := false
	if req.IsResolved != nil && *req.IsResolved && !alert.IsResolved {
		now := time.Now()
		alert.IsResolved = true
		alert.ResolvedAt = &now
		alert.ResolvedBy = userID
		changed = true
	}
	if req.Notes != nil {
		alert.Notes = *req.Notes
		changed = true
	}
	if changed {
		if err := uc.alertRepo.Update(alert); err != nil {
			return nil, err
		}
	}
	resp := dto.FromAlert(alert)
	return &resp, nil
}
