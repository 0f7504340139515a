// Package pdf implementa la exportación del reporte de movimientos de almacén
// a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Fecha de emisión                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Producto | Origen | Destino |         │
//	│         Cant | Peso | Usuario                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Cantidad total / Peso total en stock               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appusecase "github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ appusecase.MovementReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.MovementReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReportPDF(
	_ context.Context,
	rows []*repository.MovementReportRow,
	totals *repository.StockTotals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Movimientos de Almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de emisión (der).
func headerRow() core.Row {
	emitido := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE MOVIMIENTOS DE ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+emitido, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Producto", 3, align.Left),
		h("Origen", 1, align.Center),
		h("Destino", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Peso", 1, align.Right),
		h("Usuario", 2, align.Left),
	)
}

// tableRows: una fila por movimiento, más reciente primero.
func tableRows(items []*repository.MovementReportRow) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, r := range items {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.CreatedAt, cell(align.Left))),
			col.New(1).Add(text.New(r.Type, cell(align.Center))),
			col.New(3).Add(text.New(r.ProductCode+" "+r.ProductName, cell(align.Left))),
			col.New(1).Add(text.New(orDash(r.FromSector), cell(align.Center))),
			col.New(1).Add(text.New(orDash(r.ToSector), cell(align.Center))),
			col.New(1).Add(text.New(r.Quantity.StringFixed(3), cell(align.Right))),
			col.New(1).Add(text.New(r.Weight.StringFixed(3), cell(align.Right))),
			col.New(2).Add(text.New(orDashStr(r.UserName, "no informado"), cell(align.Left))),
		))
	}
	return result
}

// totalsRow: totales generales del stock al pie del reporte.
func totalsRow(totals *repository.StockTotals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Cantidad total en stock:", 2),
			label("Peso total en stock:", 8),
		),
		col.New(3).Add(
			value(totals.TotalQuantity.StringFixed(3), 2),
			value(totals.TotalWeight.StringFixed(3)+" kg", 8),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(a align.Type) props.Text {
	return props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func orDashStr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
