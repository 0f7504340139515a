package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// ReportHandler reportes del almacén (protegido, solo lectura).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Totales generales del almacén
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Reporte del log de movimientos
// @Description  Log genérico enriquecido con producto y usuario, más reciente primero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {array}  dto.MovementReportItem
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.Movements(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// MovementsPDF godoc
// @Summary      Reporte de movimientos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {file}  binary
// @Router       /api/reports/movements/pdf [get]
func (h *ReportHandler) MovementsPDF(c *fiber.Ctx) error {
	page := parsePage(c)
	pdfBytes, err := h.uc.MovementsPDF(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdfBytes)
}

// Incoming godoc
// @Summary      Detalle de entradas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.IncomingLog
// @Router       /api/reports/incoming [get]
func (h *ReportHandler) Incoming(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.Incoming(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Outgoing godoc
// @Summary      Detalle de salidas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.OutgoingLog
// @Router       /api/reports/outgoing [get]
func (h *ReportHandler) Outgoing(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.Outgoing(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Transfers godoc
// @Summary      Detalle de traslados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.TransferLog
// @Router       /api/reports/transfers [get]
func (h *ReportHandler) Transfers(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.Transfers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Adjustments godoc
// @Summary      Detalle de ajustes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.AdjustmentLog
// @Router       /api/reports/adjustments [get]
func (h *ReportHandler) Adjustments(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.Adjustments(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// NewProducts godoc
// @Summary      Detalle de altas de producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.NewProductLog
// @Router       /api/reports/new-products [get]
func (h *ReportHandler) NewProducts(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.NewProducts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Reconciliation godoc
// @Summary      Reconciliación de saldos contra el log
// @Description  Reconstruye los saldos desde el log genérico y los compara con
//
//	la tabla materializada; balanced=false señala discrepancias.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconciliationResponse
// @Router       /api/reports/reconciliation [get]
func (h *ReportHandler) Reconciliation(c *fiber.Ctx) error {
	out, err := h.uc.Reconciliation(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// parsePage lee limit/offset de la query con defaults y tope de 100.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	return page
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
