package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual de un producto en un sector; {0,0} si no hay fila.
func (r *StockRepo) Get(ctx context.Context, productID int64, sector string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, sector, quantity, weight, updated_at
		FROM stock WHERE product_id = $1 AND sector = $2`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, productID, sector).Scan(
		&s.ProductID, &s.Sector, &s.Quantity, &s.Weight, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ProductID: productID, Sector: sector, Quantity: decimal.Zero, Weight: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE).
// La espera por el bloqueo está acotada por el lock_timeout de la transacción.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID int64, sector string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, sector, quantity, weight, updated_at
		FROM stock WHERE product_id = $1 AND sector = $2
		FOR UPDATE`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, productID, sector).Scan(
		&s.ProductID, &s.Sector, &s.Quantity, &s.Weight, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ProductID: productID, Sector: sector, Quantity: decimal.Zero, Weight: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// ApplyDelta upsert: crea la fila con el delta como valor inicial o suma el
// delta al saldo existente, refrescando updated_at. Devuelve el saldo
// resultante. La no-negatividad la garantiza el caller antes de llamar.
func (r *StockRepo) ApplyDelta(ctx context.Context, productID int64, sector string, dQty, dWeight decimal.Decimal) (*entity.StockEntry, error) {
	query := `
		INSERT INTO stock (product_id, sector, quantity, weight, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, sector)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity,
		              weight   = stock.weight + EXCLUDED.weight,
		              updated_at = now()
		RETURNING product_id, sector, quantity, weight, updated_at`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, productID, sector, dQty, dWeight).Scan(
		&s.ProductID, &s.Sector, &s.Quantity, &s.Weight, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("apply stock delta: %w", err)
	}
	return &s, nil
}

// ListByProduct lista los saldos de un producto en todos sus sectores.
func (r *StockRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockEntry, error) {
	query := `
		SELECT product_id, sector, quantity, weight, updated_at
		FROM stock WHERE product_id = $1
		ORDER BY sector`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var s entity.StockEntry
		if err := rows.Scan(&s.ProductID, &s.Sector, &s.Quantity, &s.Weight, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// List lista todos los saldos con paginación.
func (r *StockRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error) {
	query := `
		SELECT product_id, sector, quantity, weight, updated_at
		FROM stock ORDER BY product_id, sector LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var s entity.StockEntry
		if err := rows.Scan(&s.ProductID, &s.Sector, &s.Quantity, &s.Weight, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
