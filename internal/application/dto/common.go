package dto

// PageRequest paginación para listados (contrato skip/limit del cliente).
type PageRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// DefaultPage aplica valores por defecto si Skip/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta genérica con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
