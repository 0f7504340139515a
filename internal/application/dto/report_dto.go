package dto

import "github.com/shopspring/decimal"

// SummaryResponse totales generales del almacén.
type SummaryResponse struct {
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalWeight   decimal.Decimal `json:"total_weight"`
}

// MovementReportItem fila del reporte de movimientos.
type MovementReportItem struct {
	MovementID  string          `json:"movement_id"`
	Type        string          `json:"type"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	FromSector  *string         `json:"from_sector,omitempty"`
	ToSector    *string         `json:"to_sector,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	UserName    string          `json:"user_name"`
	Date        string          `json:"date"`
}

// ReconciliationItem discrepancia (o coincidencia) entre saldo materializado
// y saldo reconstruido desde el log de movimientos.
type ReconciliationItem struct {
	ProductID      int64           `json:"product_id"`
	Sector         string          `json:"sector"`
	StoredQuantity decimal.Decimal `json:"stored_quantity"`
	LedgerQuantity decimal.Decimal `json:"ledger_quantity"`
	StoredWeight   decimal.Decimal `json:"stored_weight"`
	LedgerWeight   decimal.Decimal `json:"ledger_weight"`
	Balanced       bool            `json:"balanced"`
}

// ReconciliationResponse resultado completo de la reconciliación.
type ReconciliationResponse struct {
	Balanced bool                 `json:"balanced"`
	Rows     []ReconciliationItem `json:"rows"`
}
