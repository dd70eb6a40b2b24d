package dto

import "time"

// StockMovementRequest entrada para registrar una entrada o salida de stock.
// El tipo lo fija la ruta (/stock/in o /stock/out), no el cliente.
type StockMovementRequest struct {
	ProductID  string  `json:"product_id" validate:"required,uuid4"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Reason     string  `json:"reason" validate:"max=2000"`
	SupplierID *string `json:"supplier_id" validate:"omitempty,uuid4"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Type            string    `json:"type"`
	Quantity        int       `json:"quantity"`
	Reason          string    `json:"reason,omitempty"`
	SupplierID      *string   `json:"supplier_id,omitempty"`
	ProductQuantity int       `json:"product_quantity"` // cantidad resultante del producto
	CreatedAt       time.Time `json:"created_at"`
}
