package entity

import "time"

// Roles de usuario del sistema de inventario.
const (
	RoleAdministrador = "administrador"
	RoleVendedor      = "vendedor"
	RoleAuxiliar      = "auxiliar"
)

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // administrador, vendedor, auxiliar
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
