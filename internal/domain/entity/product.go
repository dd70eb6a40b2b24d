package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de alerta cuando no se indica uno.
const DefaultLowStockThreshold = 10

// Product representa un producto del inventario.
// Quantity es denormalizado: solo lo mantienen los movimientos de stock
// (RecordMovement / ReverseMovement), nunca se edita directo.
type Product struct {
	ID                string
	Name              string
	Description       string
	Barcode           string          // código de barras / referencia, único
	UnitPrice         decimal.Decimal // precio unitario, 2 decimales
	Quantity          int             // cantidad actual, derivada de movimientos
	LowStockThreshold int             // umbral de alerta de stock bajo
	CategoryID        *string         // SET NULL al eliminar la categoría
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica stock bajo: 0 < cantidad <= umbral.
// El guard > 0 evita alertar productos agotados (esos son IsOutOfStock).
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.LowStockThreshold
}

// IsOutOfStock indica stock agotado: cantidad == 0.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}
