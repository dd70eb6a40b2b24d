package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity no se acepta: la cantidad solo se mueve vía movimientos de stock.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description" validate:"max=2000"`
	Barcode           string          `json:"barcode" validate:"required,min=1,max=100"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LowStockThreshold *int            `json:"low_stock_threshold" validate:"omitempty,min=0"`
	CategoryID        *string         `json:"category_id" validate:"omitempty,uuid4"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity).
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description" validate:"omitempty,max=2000"`
	Barcode           *string          `json:"barcode" validate:"omitempty,min=1,max=100"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	LowStockThreshold *int             `json:"low_stock_threshold" validate:"omitempty,min=0"`
	CategoryID        *string          `json:"category_id" validate:"omitempty,uuid4"`
}

// ProductResponse salida de un producto, con los estados derivados de stock.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Barcode           string          `json:"barcode"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	CategoryID        *string         `json:"category_id"`
	LowStock          bool            `json:"low_stock"`
	OutOfStock        bool            `json:"out_of_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
