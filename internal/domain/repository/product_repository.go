package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Deactivate baja lógica: Active=false, la fila no se elimina.
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Product, error)
}
