package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGerente  = "gerente"
	RoleVendedor = "vendedor"
)

// User representa un usuario con acceso a los reportes de venta.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, gerente, vendedor
	Status       string // active, inactive
	CreatedAt    time.Time
}
