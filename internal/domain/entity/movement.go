package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Enumeración cerrada: cualquier otro valor
// es rechazado con ErrInvalidInput, nunca cae en un default silencioso.
const (
	MovementTypeNEW        = "NEW"        // alta de producto con stock inicial
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre sectores
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste de saldo
)

// MovementTypes lista los tipos reconocidos (para validación y documentación).
var MovementTypes = []string{
	MovementTypeNEW,
	MovementTypeIN,
	MovementTypeOUT,
	MovementTypeTRANSFER,
	MovementTypeADJUSTMENT,
}

// IsValidMovementType indica si el tipo pertenece a la enumeración cerrada.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeNEW, MovementTypeIN, MovementTypeOUT, MovementTypeTRANSFER, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// Movement es el registro genérico de auditoría: una fila inmutable por
// movimiento, cualquiera sea su tipo. FromSector es nil para NEW/IN/ADJUSTMENT,
// ToSector es nil para OUT. UserID es nil si el actor es desconocido.
type Movement struct {
	ID         string
	Type       string
	ProductID  int64
	FromSector *string
	ToSector   *string
	Quantity   decimal.Decimal
	Weight     decimal.Decimal
	UserID     *int64
	CreatedAt  time.Time
}
