package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar saldos por producto+sector.
// Las escrituras pertenecen en exclusiva al motor de movimientos, dentro de su transacción.
type StockRepository interface {
	// Get devuelve el saldo actual; si no existe la fila, devuelve {0,0}.
	Get(ctx context.Context, productID int64, sector string) (*entity.StockEntry, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, productID int64, sector string) (*entity.StockEntry, error)
	// ApplyDelta upsert: crea la fila con el delta como valor inicial o suma el
	// delta al saldo actual y refresca updated_at. Devuelve el saldo resultante.
	// No valida no-negatividad; eso es responsabilidad del caller.
	ApplyDelta(ctx context.Context, productID int64, sector string, dQty, dWeight decimal.Decimal) (*entity.StockEntry, error)
	// ListByProduct lista los saldos de un producto en todos sus sectores.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockEntry, error)
	// List lista todos los saldos con paginación (para reportes).
	List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error)
}
