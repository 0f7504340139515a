package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. El alta registra además
// un movimiento NEW con el stock inicial en Sector (peso total calculado
// como Quantity * UnitWeight).
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Size        string          `json:"size,omitempty"`
	UnitWeight  decimal.Decimal `json:"unit_weight"`
	Sector      string          `json:"sector"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Size        *string          `json:"size,omitempty"`
	UnitWeight  *decimal.Decimal `json:"unit_weight,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Size        string          `json:"size,omitempty"`
	UnitWeight  decimal.Decimal `json:"unit_weight"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateProductResponse producto creado más los saldos del movimiento NEW.
type CreateProductResponse struct {
	Product  ProductResponse `json:"product"`
	Balances []SectorBalance `json:"balances"`
}
