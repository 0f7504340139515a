package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registros de detalle por tipo de movimiento. Son vistas desnormalizadas del
// mismo evento para reportes, escritas en la misma transacción que el registro
// genérico y el saldo; nunca se modifican ni eliminan.

// IncomingLog detalle de una entrada (IN).
type IncomingLog struct {
	ID        string
	ProductID int64
	Sector    string
	Quantity  decimal.Decimal
	Weight    decimal.Decimal
	UserID    *int64
	CreatedAt time.Time
}

// OutgoingLog detalle de una salida (OUT).
type OutgoingLog struct {
	ID        string
	ProductID int64
	Sector    string
	Quantity  decimal.Decimal
	Weight    decimal.Decimal
	UserID    *int64
	CreatedAt time.Time
}

// TransferLog detalle de un traslado entre sectores (TRANSFER).
type TransferLog struct {
	ID         string
	ProductID  int64
	FromSector string
	ToSector   string
	Quantity   decimal.Decimal
	Weight     decimal.Decimal
	UserID     *int64
	CreatedAt  time.Time
}

// AdjustmentLog detalle de un ajuste de saldo (ADJUSTMENT).
type AdjustmentLog struct {
	ID        string
	ProductID int64
	Sector    string
	Quantity  decimal.Decimal
	Weight    decimal.Decimal
	UserID    *int64
	CreatedAt time.Time
}

// NewProductLog detalle del alta de un producto con stock inicial (NEW).
type NewProductLog struct {
	ID        string
	ProductID int64
	Sector    string
	Quantity  decimal.Decimal
	Weight    decimal.Decimal
	UserID    *int64
	CreatedAt time.Time
}
