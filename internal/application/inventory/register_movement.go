package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). userID es nil si el actor es desconocido.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID *int64, in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	input := MovementInput{
		Type:       in.Type,
		ProductID:  in.ProductID,
		FromSector: in.FromSector,
		ToSector:   in.ToSector,
		Quantity:   in.Quantity,
		Weight:     in.Weight,
		UserID:     userID,
	}
	return uc.RecordMovement(ctx, input)
}
