package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada (recepción)
	MovementTypeOut = "out" // salida (despacho, venta, merma)
)

// ValidMovementType indica si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockMovement representa un movimiento de stock contra un producto.
// CreatedAt es inmutable: se fija al crear y nunca se actualiza.
// No existe edición de Quantity/Type post-creación; solo crear y revertir
// mantienen el invariante cantidad = suma con signo de los movimientos.
type StockMovement struct {
	ID         string
	ProductID  string  // CASCADE al eliminar el producto
	Type       string  // in, out
	Quantity   int     // siempre positivo; el signo lo da Type
	Reason     string  // texto libre: venta, merma, devolución...
	UserID     *string // SET NULL al eliminar el usuario
	SupplierID *string // proveedor, solo tiene sentido en entradas
	CreatedAt  time.Time
}

// SignedQuantity devuelve la cantidad con signo: + entrada, - salida.
func (m *StockMovement) SignedQuantity() int {
	if m.Type == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}

// TypeLabel devuelve la etiqueta legible del tipo para reportes y exportes.
func (m *StockMovement) TypeLabel() string {
	return MovementTypeLabel(m.Type)
}

// MovementTypeLabel etiqueta legible de un tipo de movimiento.
func MovementTypeLabel(t string) string {
	switch t {
	case MovementTypeIn:
		return "Entrada"
	case MovementTypeOut:
		return "Salida"
	}
	return t
}
