package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del almacén. Code es único.
// La baja es lógica (Active=false): los movimientos históricos referencian
// productos que nunca se eliminan físicamente.
type Product struct {
	ID          int64
	Code        string
	Name        string
	Description string
	Size        string
	UnitWeight  decimal.Decimal // peso unitario en kg
	Active      bool
	CreatedAt   time.Time
}
