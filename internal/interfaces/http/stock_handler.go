package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// StockHandler consultas de saldo (protegido, solo lectura).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Balance godoc
// @Summary      Saldo de un producto en un sector
// @Description  Devuelve {0,0} para sectores donde el producto nunca tuvo stock.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int     true  "ID del producto"
// @Param        sector      query  string  true  "sector"
// @Success      200  {object}  dto.StockBalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	id := int64(c.QueryInt("product_id"))
	out, err := h.uc.Balance(c.Context(), id, c.Query("sector"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y sector son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ByProduct godoc
// @Summary      Saldos de un producto en todos sus sectores
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.StockBalanceResponse
// @Router       /api/inventory/stock/product/{id} [get]
func (h *StockHandler) ByProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.ByProduct(c.Context(), id)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
