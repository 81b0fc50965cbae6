package dto

import "time"

// UpdateAlertRequest body para PATCH /api/alerts/:id.
type UpdateAlertRequest struct {
	IsResolved *bool   `json:"is_resolved,omitempty"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// AlertResponse representación pública de una alerta de stock.
type AlertResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id"`
	AlertType    string     `json:"alert_type"`
	CurrentStock int        `json:"current_stock"`
	MinStock     int        `json:"min_stock"`
	Notes        string     `json:"notes,omitempty"`
	IsResolved   bool       `json:"is_resolved"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy   string     `json:"resolved_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AlertListResponse listado paginado de alertas.
type AlertListResponse struct {
	Data  []AlertResponse `json:"data"`
	Count int             `json:"count"`
}
