package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/strutil"
)

// StockUseCase consultas de saldo (solo lectura; las escrituras pasan por el
// motor de movimientos).
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Balance saldo puntual de un producto en un sector; {0,0} si no hay fila.
func (uc *StockUseCase) Balance(ctx context.Context, productID int64, sector string) (*dto.StockBalanceResponse, error) {
	sector = strutil.NormalizeSector(sector)
	if productID <= 0 || sector == "" {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.repo.Get(ctx, productID, sector)
	if err != nil {
		return nil, err
	}
	return &dto.StockBalanceResponse{
		ProductID: entry.ProductID,
		Sector:    entry.Sector,
		Quantity:  entry.Quantity,
		Weight:    entry.Weight,
	}, nil
}

// ByProduct saldos de un producto en todos los sectores donde tiene fila.
func (uc *StockUseCase) ByProduct(ctx context.Context, productID int64) ([]dto.StockBalanceResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockBalanceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockBalanceResponse{
			ProductID: e.ProductID,
			Sector:    e.Sector,
			Quantity:  e.Quantity,
			Weight:    e.Weight,
		})
	}
	return out, nil
}
