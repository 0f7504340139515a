package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MovementReportPDFGenerator puerto para exportar el reporte de movimientos a
// PDF (implementado en infrastructure/pdf con Maroto).
type MovementReportPDFGenerator interface {
	GenerateMovementReportPDF(ctx context.Context, rows []*repository.MovementReportRow, totals *repository.StockTotals) ([]byte, error)
}

// ReportUseCase lecturas de reportes: movimientos, detalles por tipo, totales
// y reconciliación del ledger. Solo consulta; nunca escribe.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	detailRepo repository.DetailLogRepository
	pdfGen     MovementReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, detailRepo repository.DetailLogRepository, pdfGen MovementReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, detailRepo: detailRepo, pdfGen: pdfGen}
}

// Summary totales generales del almacén (suma de cantidad y peso en stock).
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	totals, err := uc.reportRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		TotalQuantity: totals.TotalQuantity,
		TotalWeight:   totals.TotalWeight,
	}, nil
}

// Movements reporte del log genérico con nombres de producto y usuario.
func (uc *ReportUseCase) Movements(ctx context.Context, limit, offset int) ([]dto.MovementReportItem, error) {
	rows, err := uc.reportRepo.ListMovements(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementReportItem, 0, len(rows))
	for _, r := range rows {
		userName := "no informado"
		if r.UserName != nil {
			userName = *r.UserName
		}
		items = append(items, dto.MovementReportItem{
			MovementID:  r.MovementID,
			Type:        r.Type,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			FromSector:  r.FromSector,
			ToSector:    r.ToSector,
			Quantity:    r.Quantity,
			Weight:      r.Weight,
			UserName:    userName,
			Date:        r.CreatedAt,
		})
	}
	return items, nil
}

// MovementsPDF exporta el reporte de movimientos (más totales) a PDF.
func (uc *ReportUseCase) MovementsPDF(ctx context.Context, limit, offset int) ([]byte, error) {
	rows, err := uc.reportRepo.ListMovements(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	totals, err := uc.reportRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateMovementReportPDF(ctx, rows, totals)
}

// Incoming, Outgoing, Transfers, Adjustments, NewProducts exponen las tablas
// de detalle tal cual (vistas desnormalizadas del mismo evento).
func (uc *ReportUseCase) Incoming(ctx context.Context, limit, offset int) ([]*entity.IncomingLog, error) {
	return uc.detailRepo.ListIncoming(ctx, limit, offset)
}

func (uc *ReportUseCase) Outgoing(ctx context.Context, limit, offset int) ([]*entity.OutgoingLog, error) {
	return uc.detailRepo.ListOutgoing(ctx, limit, offset)
}

func (uc *ReportUseCase) Transfers(ctx context.Context, limit, offset int) ([]*entity.TransferLog, error) {
	return uc.detailRepo.ListTransfers(ctx, limit, offset)
}

func (uc *ReportUseCase) Adjustments(ctx context.Context, limit, offset int) ([]*entity.AdjustmentLog, error) {
	return uc.detailRepo.ListAdjustments(ctx, limit, offset)
}

func (uc *ReportUseCase) NewProducts(ctx context.Context, limit, offset int) ([]*entity.NewProductLog, error) {
	return uc.detailRepo.ListNewProducts(ctx, limit, offset)
}

// Reconciliation reconstruye los saldos desde el log genérico y los compara
// con la tabla materializada. Balanced global = sin discrepancias.
func (uc *ReportUseCase) Reconciliation(ctx context.Context) (*dto.ReconciliationResponse, error) {
	rows, err := uc.reportRepo.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ReconciliationResponse{Balanced: true, Rows: make([]dto.ReconciliationItem, 0, len(rows))}
	for _, r := range rows {
		balanced := r.Balanced()
		if !balanced {
			out.Balanced = false
		}
		out.Rows = append(out.Rows, dto.ReconciliationItem{
			ProductID:      r.ProductID,
			Sector:         r.Sector,
			StoredQuantity: r.StoredQuantity,
			LedgerQuantity: r.LedgerQuantity,
			StoredWeight:   r.StoredWeight,
			LedgerWeight:   r.LedgerWeight,
			Balanced:       balanced,
		})
	}
	return out, nil
}
