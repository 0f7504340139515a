package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockTotals totales generales del almacén (suma sobre la tabla de saldos).
type StockTotals struct {
	TotalQuantity decimal.Decimal
	TotalWeight   decimal.Decimal
}

// MovementReportRow fila del reporte de movimientos: log genérico enriquecido
// con nombre de producto y de usuario (usuario puede ser "no informado").
type MovementReportRow struct {
	MovementID  string
	Type        string
	ProductCode string
	ProductName string
	FromSector  *string
	ToSector    *string
	Quantity    decimal.Decimal
	Weight      decimal.Decimal
	UserName    *string
	CreatedAt   string
}

// ReconciliationRow compara el saldo materializado de un producto+sector con
// el saldo reconstruido reproduciendo el log genérico de movimientos.
type ReconciliationRow struct {
	ProductID      int64
	Sector         string
	StoredQuantity decimal.Decimal
	LedgerQuantity decimal.Decimal
	StoredWeight   decimal.Decimal
	LedgerWeight   decimal.Decimal
}

// Balanced indica si el saldo materializado coincide con el reconstruido.
func (r ReconciliationRow) Balanced() bool {
	return r.StoredQuantity.Equal(r.LedgerQuantity) && r.StoredWeight.Equal(r.LedgerWeight)
}

// ReportRepository define el puerto de lecturas de reportes. Solo consulta:
// nunca escribe sobre saldos ni logs.
type ReportRepository interface {
	Totals(ctx context.Context) (*StockTotals, error)
	ListMovements(ctx context.Context, limit, offset int) ([]*MovementReportRow, error)
	// Reconcile reconstruye el saldo por producto+sector desde el log genérico
	// (IN/NEW/ADJUSTMENT suman en destino, OUT resta en origen, TRANSFER resta
	// en origen y suma en destino) y lo compara con la tabla de saldos.
	Reconcile(ctx context.Context) ([]*ReconciliationRow, error)
}
