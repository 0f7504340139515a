package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa el saldo actual de un producto en un sector
// (fila única por producto+sector, creada al primer movimiento y nunca eliminada).
// Invariante: Quantity y Weight son >= 0 después de toda operación exitosa;
// la validación ocurre en el motor de movimientos, no aquí.
type StockEntry struct {
	ProductID int64
	Sector    string
	Quantity  decimal.Decimal
	Weight    decimal.Decimal
	UpdatedAt time.Time
}
