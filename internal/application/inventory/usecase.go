package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/strutil"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional
// (NEW, IN, OUT, TRANSFER, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback. Es el único camino de escritura sobre saldos y logs.
type RecordMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento.
// NEW/IN/ADJUSTMENT usan ToSector; OUT usa FromSector; TRANSFER ambos.
// Quantity y Weight son siempre >= 0: el motor niega internamente los deltas
// de las patas de salida. UserID es nil si el actor es desconocido.
type MovementInput struct {
	Type       string
	ProductID  int64
	FromSector string
	ToSector   string
	Quantity   decimal.Decimal
	Weight     decimal.Decimal
	UserID     *int64
}

// RecordMovement valida la entrada, abre una transacción, bloquea el saldo
// origen cuando corresponde, aplica los deltas, escribe el registro de detalle
// del tipo y el log genérico, y hace Commit o Rollback.
// Devuelve los saldos actualizados, uno por sector tocado (origen primero y
// destino después para TRANSFER).
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*dto.RecordMovementResponse, error) {
	if input.Quantity.IsNegative() || input.Weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	input.FromSector = strutil.NormalizeSector(input.FromSector)
	input.ToSector = strutil.NormalizeSector(input.ToSector)

	// Validar tipo (enumeración cerrada) y sectores requeridos por tipo.
	switch input.Type {
	case entity.MovementTypeNEW, entity.MovementTypeIN, entity.MovementTypeADJUSTMENT:
		if input.ToSector == "" {
			return nil, domain.ErrInvalidInput
		}
		input.FromSector = "" // el log genérico lleva origen NULL para estos tipos
	case entity.MovementTypeOUT:
		if input.FromSector == "" {
			return nil, domain.ErrInvalidInput
		}
		input.ToSector = "" // destino NULL en el log genérico
	case entity.MovementTypeTRANSFER:
		if input.FromSector == "" || input.ToSector == "" || input.FromSector == input.ToSector {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	// El producto debe existir; no se exige Active: los movimientos sobre
	// productos dados de baja siguen siendo válidos históricamente.
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movementID := uuid.New().String()
	var balances []dto.SectorBalance

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		detailRepo repository.DetailLogRepository,
		stockRepo repository.StockRepository,
	) error {
		var err error
		switch input.Type {
		case entity.MovementTypeNEW:
			balances, err = uc.doNEW(ctx, detailRepo, stockRepo, input, now)
		case entity.MovementTypeIN:
			balances, err = uc.doIN(ctx, detailRepo, stockRepo, input, now)
		case entity.MovementTypeOUT:
			balances, err = uc.doOUT(ctx, detailRepo, stockRepo, input, now)
		case entity.MovementTypeTRANSFER:
			balances, err = uc.doTRANSFER(ctx, detailRepo, stockRepo, input, now)
		case entity.MovementTypeADJUSTMENT:
			balances, err = uc.doADJUSTMENT(ctx, detailRepo, stockRepo, input, now)
		}
		if err != nil {
			return err
		}
		// Exactamente un registro en el log genérico por llamada,
		// en la misma transacción que el detalle y los saldos.
		return movRepo.Create(ctx, &entity.Movement{
			ID:         movementID,
			Type:       input.Type,
			ProductID:  input.ProductID,
			FromSector: nilIfEmpty(input.FromSector),
			ToSector:   nilIfEmpty(input.ToSector),
			Quantity:   input.Quantity,
			Weight:     input.Weight,
			UserID:     input.UserID,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordMovementResponse{MovementID: movementID, Balances: balances}, nil
}

// doNEW: alta con stock inicial. Suma en destino y registra el detalle de
// nuevo producto.
func (uc *RecordMovementUseCase) doNEW(
	ctx context.Context,
	detailRepo repository.DetailLogRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time,
) ([]dto.SectorBalance, error) {
	log := &entity.NewProductLog{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Sector:    input.ToSector,
		Quantity:  input.Quantity,
		Weight:    input.Weight,
		UserID:    input.UserID,
		CreatedAt: now,
	}
	if err := detailRepo.CreateNewProduct(ctx, log); err != nil {
		return nil, err
	}
	bal, err := stockRepo.ApplyDelta(ctx, input.ProductID, input.ToSector, input.Quantity, input.Weight)
	if err != nil {
		return nil, err
	}
	return []dto.SectorBalance{toBalance(bal)}, nil
}

// doIN: entrada. Suma en destino, sin verificación de suficiencia.
func (uc *RecordMovementUseCase) doIN(
	ctx context.Context,
	detailRepo repository.DetailLogRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time,
) ([]dto.SectorBalance, error) {
	log := &entity.IncomingLog{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Sector:    input.ToSector,
		Quantity:  input.Quantity,
		Weight:    input.Weight,
		UserID:    input.UserID,
		CreatedAt: now,
	}
	if err := detailRepo.CreateIncoming(ctx, log); err != nil {
		return nil, err
	}
	bal, err := stockRepo.ApplyDelta(ctx, input.ProductID, input.ToSector, input.Quantity, input.Weight)
	if err != nil {
		return nil, err
	}
	return []dto.SectorBalance{toBalance(bal)}, nil
}

// doOUT: bloquea la fila origen, verifica que el saldo cubra cantidad Y peso,
// resta en origen. Sin mutación alguna si el saldo no alcanza.
func (uc *RecordMovementUseCase) doOUT(
	ctx context.Context,
	detailRepo repository.DetailLogRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time,
) ([]dto.SectorBalance, error) {
	stock, err := stockRepo.GetForUpdate(ctx, input.ProductID, input.FromSector)
	if err != nil {
		return nil, err
	}
	if stock.Quantity.LessThan(input.Quantity) || stock.Weight.LessThan(input.Weight) {
		return nil, domain.ErrInsufficientBalance
	}
	log := &entity.OutgoingLog{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Sector:    input.FromSector,
		Quantity:  input.Quantity,
		Weight:    input.Weight,
		UserID:    input.UserID,
		CreatedAt: now,
	}
	if err := detailRepo.CreateOutgoing(ctx, log); err != nil {
		return nil, err
	}
	bal, err := stockRepo.ApplyDelta(ctx, input.ProductID, input.FromSector, input.Quantity.Neg(), input.Weight.Neg())
	if err != nil {
		return nil, err
	}
	return []dto.SectorBalance{toBalance(bal)}, nil
}

// doTRANSFER: bloquea y verifica el origen, resta en origen y suma en destino
// en la misma transacción. Devuelve origen primero, destino después.
func (uc *RecordMovementUseCase) doTRANSFER(
	ctx context.Context,
	detailRepo repository.DetailLogRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time,
) ([]dto.SectorBalance, error) {
	origin, err := stockRepo.GetForUpdate(ctx, input.ProductID, input.FromSector)
	if err != nil {
		return nil, err
	}
	if origin.Quantity.LessThan(input.Quantity) || origin.Weight.LessThan(input.Weight) {
		return nil, domain.ErrInsufficientBalance
	}
	log := &entity.TransferLog{
		ID:         uuid.New().String(),
		ProductID:  input.ProductID,
		FromSector: input.FromSector,
		ToSector:   input.ToSector,
		Quantity:   input.Quantity,
		Weight:     input.Weight,
		UserID:     input.UserID,
		CreatedAt:  now,
	}
	if err := detailRepo.CreateTransfer(ctx, log); err != nil {
		return nil, err
	}
	from, err := stockRepo.ApplyDelta(ctx, input.ProductID, input.FromSector, input.Quantity.Neg(), input.Weight.Neg())
	if err != nil {
		return nil, err
	}
	to, err := stockRepo.ApplyDelta(ctx, input.ProductID, input.ToSector, input.Quantity, input.Weight)
	if err != nil {
		return nil, err
	}
	return []dto.SectorBalance{toBalance(from), toBalance(to)}, nil
}

// doADJUSTMENT: delta incremental no negativo sobre el destino. La
// precondición global (cantidad y peso >= 0) aplica también aquí: un ajuste
// solo suma; reducir un saldo se expresa como salida (OUT).
func (uc *RecordMovementUseCase) doADJUSTMENT(
	ctx context.Context,
	detailRepo repository.DetailLogRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time,
) ([]dto.SectorBalance, error) {
	log := &entity.AdjustmentLog{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Sector:    input.ToSector,
		Quantity:  input.Quantity,
		Weight:    input.Weight,
		UserID:    input.UserID,
		CreatedAt: now,
	}
	if err := detailRepo.CreateAdjustment(ctx, log); err != nil {
		return nil, err
	}
	bal, err := stockRepo.ApplyDelta(ctx, input.ProductID, input.ToSector, input.Quantity, input.Weight)
	if err != nil {
		return nil, err
	}
	return []dto.SectorBalance{toBalance(bal)}, nil
}

func toBalance(s *entity.StockEntry) dto.SectorBalance {
	return dto.SectorBalance{Sector: s.Sector, Quantity: s.Quantity, Weight: s.Weight}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
