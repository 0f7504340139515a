package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERADOR"
)

// User representa un usuario del sistema. Email y NationalID son únicos.
type User struct {
	ID           int64
	Name         string
	Email        string
	NationalID   string // documento de identidad (CPF)
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, OPERADOR
	Active       bool
	CreatedAt    time.Time
}
