package dto

import "github.com/shopspring/decimal"

// RecordMovementRequest body para POST /api/inventory/movements.
// Sectores requeridos según tipo: NEW/IN/ADJUSTMENT -> to_sector,
// OUT -> from_sector, TRANSFER -> ambos.
type RecordMovementRequest struct {
	Type       string          `json:"type"`
	ProductID  int64           `json:"product_id"`
	FromSector string          `json:"from_sector,omitempty"`
	ToSector   string          `json:"to_sector,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	Weight     decimal.Decimal `json:"weight"`
}

// SectorBalance snapshot de saldo actualizado devuelto por el motor de
// movimientos (uno por sector tocado; origen primero en TRANSFER).
type SectorBalance struct {
	Sector   string          `json:"sector"`
	Quantity decimal.Decimal `json:"quantity"`
	Weight   decimal.Decimal `json:"weight"`
}

// RecordMovementResponse respuesta del registro de movimiento.
type RecordMovementResponse struct {
	MovementID string          `json:"movement_id"`
	Balances   []SectorBalance `json:"balances"`
}

// StockBalanceResponse respuesta de la consulta de saldo puntual.
type StockBalanceResponse struct {
	ProductID int64           `json:"product_id"`
	Sector    string          `json:"sector"`
	Quantity  decimal.Decimal `json:"quantity"`
	Weight    decimal.Decimal `json:"weight"`
}
