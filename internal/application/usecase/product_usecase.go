package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/strutil"
)

// ProductUseCase aplica reglas de negocio para productos. El alta registra
// además el movimiento NEW con el stock inicial vía el motor de movimientos
// (único camino de escritura sobre saldos).
type ProductUseCase struct {
	repo       repository.ProductRepository
	movementUC *inventory.RecordMovementUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movementUC *inventory.RecordMovementUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, movementUC: movementUC}
}

// Create crea el producto y registra su movimiento NEW con el stock inicial.
// El peso total inicial se calcula como Quantity * UnitWeight (3 decimales).
// El sector se normaliza antes de persistir: si queda vacío se rechaza todo,
// sin dejar un producto huérfano sin su movimiento NEW.
func (uc *ProductUseCase) Create(ctx context.Context, userID *int64, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	sector := strutil.NormalizeSector(in.Sector)
	if in.Code == "" || in.Name == "" || sector == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.UnitWeight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Size:        in.Size,
		UnitWeight:  in.UnitWeight,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	totalWeight := in.Quantity.Mul(in.UnitWeight).Round(3)
	out, err := uc.movementUC.RecordMovement(ctx, inventory.MovementInput{
		Type:      entity.MovementTypeNEW,
		ProductID: product.ID,
		ToSector:  sector,
		Quantity:  in.Quantity,
		Weight:    totalWeight,
		UserID:    userID,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Product:  *toProductResponse(product),
		Balances: out.Balances,
	}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos maestros de un producto (no toca saldos).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.UnitWeight != nil {
		if in.UnitWeight.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitWeight = *in.UnitWeight
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate baja lógica del producto; el historial de movimientos se conserva.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

// List lista productos con paginación; onlyActive filtra los dados de baja.
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Size:        p.Size,
		UnitWeight:  p.UnitWeight,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}
