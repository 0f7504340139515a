package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del log genérico de
// movimientos (append-only: solo Create y lecturas).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error)
}
