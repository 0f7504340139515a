package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación de solo lectura para reportes sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Totals suma cantidad y peso sobre toda la tabla de saldos.
func (r *ReportRepo) Totals(ctx context.Context) (*repository.StockTotals, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(weight), 0)
		FROM stock`
	var t repository.StockTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.TotalQuantity, &t.TotalWeight); err != nil {
		return nil, fmt.Errorf("stock totals: %w", err)
	}
	return &t, nil
}

// ListMovements lista el log genérico enriquecido con producto y usuario.
// El JOIN con users es LEFT: movimientos de usuarios eliminados quedan con
// user_name en NULL.
func (r *ReportRepo) ListMovements(ctx context.Context, limit, offset int) ([]*repository.MovementReportRow, error) {
	query := `
		SELECT m.id, m.type, p.code, p.name,
		       m.from_sector, m.to_sector, m.quantity, m.weight,
		       u.name, to_char(m.created_at, 'YYYY-MM-DD HH24:MI:SS')
		FROM movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movement report: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementReportRow
	for rows.Next() {
		var row repository.MovementReportRow
		if err := rows.Scan(&row.MovementID, &row.Type, &row.ProductCode, &row.ProductName,
			&row.FromSector, &row.ToSector, &row.Quantity, &row.Weight,
			&row.UserName, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement report row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Reconcile reconstruye el saldo por producto+sector reproduciendo el log
// genérico (entradas suman en destino, salidas restan en origen, traslados
// hacen ambas) y lo compara con la tabla de saldos. FULL JOIN para detectar
// saldos sin movimientos y movimientos sin saldo materializado.
func (r *ReportRepo) Reconcile(ctx context.Context) ([]*repository.ReconciliationRow, error) {
	query := `
		WITH ledger AS (
			SELECT product_id, sector,
			       SUM(quantity) AS quantity, SUM(weight) AS weight
			FROM (
				SELECT product_id, to_sector AS sector, quantity, weight
				FROM movements
				WHERE type IN ('NEW', 'IN', 'ADJUSTMENT')
				UNION ALL
				SELECT product_id, from_sector AS sector, -quantity, -weight
				FROM movements
				WHERE type = 'OUT'
				UNION ALL
				SELECT product_id, from_sector AS sector, -quantity, -weight
				FROM movements
				WHERE type = 'TRANSFER'
				UNION ALL
				SELECT product_id, to_sector AS sector, quantity, weight
				FROM movements
				WHERE type = 'TRANSFER'
			) deltas
			GROUP BY product_id, sector
		)
		SELECT COALESCE(s.product_id, l.product_id),
		       COALESCE(s.sector, l.sector),
		       COALESCE(s.quantity, 0), COALESCE(l.quantity, 0),
		       COALESCE(s.weight, 0), COALESCE(l.weight, 0)
		FROM stock s
		FULL JOIN ledger l ON l.product_id = s.product_id AND l.sector = s.sector
		ORDER BY 1, 2`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reconcile stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.ReconciliationRow
	for rows.Next() {
		var row repository.ReconciliationRow
		if err := rows.Scan(&row.ProductID, &row.Sector,
			&row.StoredQuantity, &row.LedgerQuantity,
			&row.StoredWeight, &row.LedgerWeight); err != nil {
			return nil, fmt.Errorf("scan reconciliation row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
