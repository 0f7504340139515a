package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// DetailLogRepository define el puerto para las cinco tablas de detalle por
// tipo de movimiento. Igual que el log genérico: append-only.
type DetailLogRepository interface {
	CreateIncoming(ctx context.Context, log *entity.IncomingLog) error
	CreateOutgoing(ctx context.Context, log *entity.OutgoingLog) error
	CreateTransfer(ctx context.Context, log *entity.TransferLog) error
	CreateAdjustment(ctx context.Context, log *entity.AdjustmentLog) error
	CreateNewProduct(ctx context.Context, log *entity.NewProductLog) error

	ListIncoming(ctx context.Context, limit, offset int) ([]*entity.IncomingLog, error)
	ListOutgoing(ctx context.Context, limit, offset int) ([]*entity.OutgoingLog, error)
	ListTransfers(ctx context.Context, limit, offset int) ([]*entity.TransferLog, error)
	ListAdjustments(ctx context.Context, limit, offset int) ([]*entity.AdjustmentLog, error)
	ListNewProducts(ctx context.Context, limit, offset int) ([]*entity.NewProductLog, error)
}
