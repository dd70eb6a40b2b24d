package repository

import (
	"time"

	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
)

// MovementFilter criterios opcionales y conjuntivos para el reporte de movimientos.
// DateTo es exclusivo: el caso de uso ya lo normalizó a "fin de día + 24h" para
// incluir el día final completo.
type MovementFilter struct {
	DateFrom  *time.Time // inclusive
	DateTo    *time.Time // exclusivo
	ProductID string
	Type      string // in, out o vacío
}

// MovementReportRow fila del reporte: movimiento con nombres resueltos por JOIN.
// UserName y SupplierName son nil cuando la referencia fue anulada o no existe.
type MovementReportRow struct {
	ID           string
	CreatedAt    time.Time
	ProductName  string
	Barcode      string
	Type         string
	Quantity     int
	Reason       string
	UserName     *string
	SupplierName *string
}

// MovementRepository define el puerto de persistencia para StockMovement (DIP).
// El orden por defecto de todo listado es created_at DESC (más reciente primero).
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	Delete(id string) error
	ListReport(filter MovementFilter) ([]MovementReportRow, error)
	Recent(limit int) ([]MovementReportRow, error)
	SumQuantitiesSince(since time.Time) (in int, out int, err error)
}
