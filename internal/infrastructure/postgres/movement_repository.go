package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log genérico de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no hay Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento en el log genérico.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, product_id, from_sector, to_sector, quantity, weight, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.Type, movement.ProductID,
		movement.FromSector, movement.ToSector,
		movement.Quantity, movement.Weight, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `
		SELECT id, type, product_id, from_sector, to_sector, quantity, weight, user_id, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Type, &m.ProductID, &m.FromSector, &m.ToSector,
		&m.Quantity, &m.Weight, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista movimientos en un rango de fechas (ambos extremos opcionales).
func (r *MovementRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, type, product_id, from_sector, to_sector, quantity, weight, user_id, created_at
		FROM movements WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.queryMovements(ctx, query, args...)
}

// ListByProduct lista movimientos de un producto.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, type, product_id, from_sector, to_sector, quantity, weight, user_id, created_at
		FROM movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMovements(ctx, query, productID, limit, offset)
}

func (r *MovementRepo) queryMovements(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Type, &m.ProductID, &m.FromSector, &m.ToSector,
			&m.Quantity, &m.Weight, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
