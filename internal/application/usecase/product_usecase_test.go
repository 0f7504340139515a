package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Fakes mínimos: catálogo en memoria más un TxRunner que pasa repos nulos
// salvo el de stock, suficiente para ejercitar el alta con movimiento NEW.

type fakeProductRepo struct {
	seq      int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.seq++
	p.ID = r.seq
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) Deactivate(_ context.Context, id int64) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, onlyActive bool, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeStockRepo struct {
	entries map[string]*entity.StockEntry
}

func (r *fakeStockRepo) key(productID int64, sector string) string {
	return sector // un producto por test alcanza
}
func (r *fakeStockRepo) Get(_ context.Context, productID int64, sector string) (*entity.StockEntry, error) {
	if e, ok := r.entries[r.key(productID, sector)]; ok {
		return e, nil
	}
	return &entity.StockEntry{ProductID: productID, Sector: sector, Quantity: decimal.Zero, Weight: decimal.Zero}, nil
}
func (r *fakeStockRepo) GetForUpdate(ctx context.Context, productID int64, sector string) (*entity.StockEntry, error) {
	return r.Get(ctx, productID, sector)
}
func (r *fakeStockRepo) ApplyDelta(_ context.Context, productID int64, sector string, dQty, dWeight decimal.Decimal) (*entity.StockEntry, error) {
	k := r.key(productID, sector)
	e, ok := r.entries[k]
	if !ok {
		e = &entity.StockEntry{ProductID: productID, Sector: sector, Quantity: decimal.Zero, Weight: decimal.Zero}
		r.entries[k] = e
	}
	e.Quantity = e.Quantity.Add(dQty)
	e.Weight = e.Weight.Add(dWeight)
	e.UpdatedAt = time.Now()
	return e, nil
}
func (r *fakeStockRepo) ListByProduct(_ context.Context, _ int64) ([]*entity.StockEntry, error) {
	return nil, nil
}
func (r *fakeStockRepo) List(_ context.Context, _, _ int) ([]*entity.StockEntry, error) {
	return nil, nil
}

type fakeMovementRepo struct{ created []*entity.Movement }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.created = append(r.created, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(_ context.Context, _ string) (*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) List(_ context.Context, _, _ *time.Time, _, _ int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByProduct(_ context.Context, _ int64, _, _ int) ([]*entity.Movement, error) {
	return nil, nil
}

type fakeDetailRepo struct{ newProducts []*entity.NewProductLog }

func (r *fakeDetailRepo) CreateIncoming(_ context.Context, _ *entity.IncomingLog) error   { return nil }
func (r *fakeDetailRepo) CreateOutgoing(_ context.Context, _ *entity.OutgoingLog) error   { return nil }
func (r *fakeDetailRepo) CreateTransfer(_ context.Context, _ *entity.TransferLog) error   { return nil }
func (r *fakeDetailRepo) CreateAdjustment(_ context.Context, _ *entity.AdjustmentLog) error {
	return nil
}
func (r *fakeDetailRepo) CreateNewProduct(_ context.Context, l *entity.NewProductLog) error {
	r.newProducts = append(r.newProducts, l)
	return nil
}
func (r *fakeDetailRepo) ListIncoming(_ context.Context, _, _ int) ([]*entity.IncomingLog, error) {
	return nil, nil
}
func (r *fakeDetailRepo) ListOutgoing(_ context.Context, _, _ int) ([]*entity.OutgoingLog, error) {
	return nil, nil
}
func (r *fakeDetailRepo) ListTransfers(_ context.Context, _, _ int) ([]*entity.TransferLog, error) {
	return nil, nil
}
func (r *fakeDetailRepo) ListAdjustments(_ context.Context, _, _ int) ([]*entity.AdjustmentLog, error) {
	return nil, nil
}
func (r *fakeDetailRepo) ListNewProducts(_ context.Context, _, _ int) ([]*entity.NewProductLog, error) {
	return nil, nil
}

type fakeTxRunner struct {
	mov    *fakeMovementRepo
	detail *fakeDetailRepo
	stock  *fakeStockRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	detailRepo repository.DetailLogRepository,
	stockRepo repository.StockRepository,
) error) error {
	return fn(r.mov, r.detail, r.stock)
}

func setupProductUC() (*usecase.ProductUseCase, *fakeTxRunner, *fakeProductRepo) {
	tx := &fakeTxRunner{
		mov:    &fakeMovementRepo{},
		detail: &fakeDetailRepo{},
		stock:  &fakeStockRepo{entries: make(map[string]*entity.StockEntry)},
	}
	products := newFakeProductRepo()
	movementUC := inventory.NewRecordMovementUseCase(tx, products)
	return usecase.NewProductUseCase(products, movementUC), tx, products
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El alta crea el producto y registra un NEW con el peso total calculado
// como quantity * unit_weight (3 decimales).
func TestProductCreate_RegistraNEWConPesoCalculado(t *testing.T) {
	uc, tx, _ := setupProductUC()

	out, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Code:       "P-001",
		Name:       "Bobina de acero",
		Sector:     "Depósito A",
		Quantity:   decimal.NewFromInt(100),
		UnitWeight: decimal.RequireFromString("0.5125"),
	})
	require.NoError(t, err)

	require.Len(t, tx.mov.created, 1, "el alta registra un movimiento NEW")
	assert.Equal(t, entity.MovementTypeNEW, tx.mov.created[0].Type)
	require.Len(t, tx.detail.newProducts, 1)

	// 100 * 0.5125 = 51.25 (redondeado a 3 decimales)
	assert.True(t, tx.mov.created[0].Weight.Equal(decimal.RequireFromString("51.25")),
		"peso total = quantity * unit_weight")

	require.Len(t, out.Balances, 1)
	assert.True(t, out.Balances[0].Quantity.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Depósito A", out.Balances[0].Sector)
	assert.True(t, out.Product.Active, "el producto nace activo")
	assert.NotZero(t, out.Product.ID)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc, _, _ := setupProductUC()

	req := dto.CreateProductRequest{
		Code: "P-001", Name: "Bobina", Sector: "A",
		Quantity: decimal.NewFromInt(1), UnitWeight: decimal.NewFromInt(1),
	}
	_, err := uc.Create(context.Background(), nil, req)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), nil, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CamposRequeridos(t *testing.T) {
	uc, _, _ := setupProductUC()

	_, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Name: "sin código", Sector: "A",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Code: "P-002", Name: "sin sector",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un sector de solo espacios debe rechazarse antes de persistir: el alta no
// puede dejar un producto sin fila de stock ni movimiento NEW.
func TestProductCreate_SectorEnBlanco_NoDejaProductoHuerfano(t *testing.T) {
	uc, tx, products := setupProductUC()

	_, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Code: "P-ORF", Name: "Bobina", Sector: "   ",
		Quantity: decimal.NewFromInt(10), UnitWeight: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := products.GetByCode(context.Background(), "P-ORF")
	require.NoError(t, err)
	assert.Nil(t, got, "el producto no debe quedar persistido")
	assert.Empty(t, tx.mov.created, "tampoco debe haber movimiento registrado")
}

// El sector se normaliza en el alta: espacios alrededor y repetidos colapsan
// a la forma canónica antes de tocar el saldo.
func TestProductCreate_SectorSeNormaliza(t *testing.T) {
	uc, _, _ := setupProductUC()

	out, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Code: "P-001", Name: "Bobina", Sector: "  Depósito   A ",
		Quantity: decimal.NewFromInt(5), UnitWeight: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	require.Len(t, out.Balances, 1)
	assert.Equal(t, "Depósito A", out.Balances[0].Sector)
}

func TestProductDeactivate_BajaLogica(t *testing.T) {
	uc, _, products := setupProductUC()

	out, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Code: "P-001", Name: "Bobina", Sector: "A",
		Quantity: decimal.NewFromInt(1), UnitWeight: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), out.Product.ID))
	assert.False(t, products.products[out.Product.ID].Active, "baja lógica, la fila sigue existiendo")

	err = uc.Deactivate(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
