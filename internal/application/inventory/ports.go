package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se confirman el detalle, los saldos y el log genérico
// juntos, o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		detailRepo repository.DetailLogRepository,
		stockRepo repository.StockRepository,
	) error) error
}
