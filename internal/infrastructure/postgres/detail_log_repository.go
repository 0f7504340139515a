package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.DetailLogRepository = (*DetailLogRepo)(nil)

// DetailLogRepo implementación de las cinco tablas de detalle por tipo de
// movimiento (usable con pool o tx). Append-only.
type DetailLogRepo struct {
	q Querier
}

// NewDetailLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDetailLogRepository(q Querier) *DetailLogRepo {
	return &DetailLogRepo{q: q}
}

// CreateIncoming persiste el detalle de una entrada.
func (r *DetailLogRepo) CreateIncoming(ctx context.Context, log *entity.IncomingLog) error {
	query := `
		INSERT INTO incoming_logs (id, product_id, sector, quantity, weight, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ProductID, log.Sector, log.Quantity, log.Weight, log.UserID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("create incoming log: %w", err)
	}
	return nil
}

// CreateOutgoing persiste el detalle de una salida.
func (r *DetailLogRepo) CreateOutgoing(ctx context.Context, log *entity.OutgoingLog) error {
	query := `
		INSERT INTO outgoing_logs (id, product_id, sector, quantity, weight, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ProductID, log.Sector, log.Quantity, log.Weight, log.UserID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("create outgoing log: %w", err)
	}
	return nil
}

// CreateTransfer persiste el detalle de un traslado.
func (r *DetailLogRepo) CreateTransfer(ctx context.Context, log *entity.TransferLog) error {
	query := `
		INSERT INTO transfer_logs (id, product_id, from_sector, to_sector, quantity, weight, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ProductID, log.FromSector, log.ToSector, log.Quantity, log.Weight, log.UserID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("create transfer log: %w", err)
	}
	return nil
}

// CreateAdjustment persiste el detalle de un ajuste de saldo.
func (r *DetailLogRepo) CreateAdjustment(ctx context.Context, log *entity.AdjustmentLog) error {
	query := `
		INSERT INTO adjustment_logs (id, product_id, sector, quantity, weight, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ProductID, log.Sector, log.Quantity, log.Weight, log.UserID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("create adjustment log: %w", err)
	}
	return nil
}

// CreateNewProduct persiste el detalle del alta de un producto.
func (r *DetailLogRepo) CreateNewProduct(ctx context.Context, log *entity.NewProductLog) error {
	query := `
		INSERT INTO new_product_logs (id, product_id, sector, quantity, weight, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ProductID, log.Sector, log.Quantity, log.Weight, log.UserID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("create new product log: %w", err)
	}
	return nil
}

// ListIncoming lista entradas, más reciente primero.
func (r *DetailLogRepo) ListIncoming(ctx context.Context, limit, offset int) ([]*entity.IncomingLog, error) {
	query := `
		SELECT id, product_id, sector, quantity, weight, user_id, created_at
		FROM incoming_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incoming logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.IncomingLog
	for rows.Next() {
		var l entity.IncomingLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Sector, &l.Quantity, &l.Weight, &l.UserID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan incoming log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListOutgoing lista salidas, más reciente primero.
func (r *DetailLogRepo) ListOutgoing(ctx context.Context, limit, offset int) ([]*entity.OutgoingLog, error) {
	query := `
		SELECT id, product_id, sector, quantity, weight, user_id, created_at
		FROM outgoing_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outgoing logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.OutgoingLog
	for rows.Next() {
		var l entity.OutgoingLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Sector, &l.Quantity, &l.Weight, &l.UserID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outgoing log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListTransfers lista traslados, más reciente primero.
func (r *DetailLogRepo) ListTransfers(ctx context.Context, limit, offset int) ([]*entity.TransferLog, error) {
	query := `
		SELECT id, product_id, from_sector, to_sector, quantity, weight, user_id, created_at
		FROM transfer_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfer logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferLog
	for rows.Next() {
		var l entity.TransferLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.FromSector, &l.ToSector, &l.Quantity, &l.Weight, &l.UserID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListAdjustments lista ajustes, más reciente primero.
func (r *DetailLogRepo) ListAdjustments(ctx context.Context, limit, offset int) ([]*entity.AdjustmentLog, error) {
	query := `
		SELECT id, product_id, sector, quantity, weight, user_id, created_at
		FROM adjustment_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustment logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AdjustmentLog
	for rows.Next() {
		var l entity.AdjustmentLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Sector, &l.Quantity, &l.Weight, &l.UserID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListNewProducts lista altas de producto, más reciente primero.
func (r *DetailLogRepo) ListNewProducts(ctx context.Context, limit, offset int) ([]*entity.NewProductLog, error) {
	query := `
		SELECT id, product_id, sector, quantity, weight, user_id, created_at
		FROM new_product_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list new product logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.NewProductLog
	for rows.Next() {
		var l entity.NewProductLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Sector, &l.Quantity, &l.Weight, &l.UserID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan new product log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
