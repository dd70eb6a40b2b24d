// Package report contiene los casos de uso de solo lectura: reporte filtrado
// de movimientos (compartido por el listado JSON y los exportes CSV/PDF),
// dashboard de inicio y alertas de stock.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/stock-manager-api/internal/application/dto"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	"github.com/jhoicas/stock-manager-api/internal/domain/repository"
)

const (
	dateLayout        = "2006-01-02"
	recentMovements   = 5 // últimos movimientos en el dashboard
	dashboardMonthAgo = -1
)

// UseCase consultas de reporte, dashboard y alertas. Todas las predicados de
// stock bajo/agotado se derivan en cada lectura, nunca se cachean.
type UseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movementRepo repository.MovementRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// Movements aplica los filtros del reporte y devuelve las filas más recientes
// primero. El mismo resultado alimenta el listado JSON, el CSV y el PDF, de
// modo que los tres rendering comparten semántica de filtro exacta.
func (uc *UseCase) Movements(ctx context.Context, q dto.ReportQuery) (*dto.ReportResponse, error) {
	filter, labels, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.movementRepo.ListReport(*filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReportRow(r))
	}
	return &dto.ReportResponse{Filters: labels, Total: len(out), Rows: out}, nil
}

// buildFilter valida y normaliza los criterios: date_to es inclusivo del día
// completo, así que se traduce a un límite exclusivo de medianoche siguiente.
func buildFilter(q dto.ReportQuery) (*repository.MovementFilter, []dto.ReportFilterLabel, error) {
	var filter repository.MovementFilter
	var labels []dto.ReportFilterLabel

	var from, to time.Time
	if q.DateFrom != "" {
		t, err := time.ParseInLocation(dateLayout, q.DateFrom, time.Local)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		from = t
		filter.DateFrom = &from
		labels = append(labels, dto.ReportFilterLabel{Name: "Desde", Value: q.DateFrom})
	}
	if q.DateTo != "" {
		t, err := time.ParseInLocation(dateLayout, q.DateTo, time.Local)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		if q.DateFrom != "" && from.After(t) {
			return nil, nil, domain.ErrInvalidDateRange
		}
		to = t.Add(24 * time.Hour)
		filter.DateTo = &to
		labels = append(labels, dto.ReportFilterLabel{Name: "Hasta", Value: q.DateTo})
	}
	if q.ProductID != "" {
		filter.ProductID = q.ProductID
		labels = append(labels, dto.ReportFilterLabel{Name: "Producto", Value: q.ProductID})
	}
	if q.Type != "" {
		if !entity.ValidMovementType(q.Type) {
			return nil, nil, domain.ErrInvalidInput
		}
		filter.Type = q.Type
		labels = append(labels, dto.ReportFilterLabel{Name: "Tipo", Value: entity.MovementTypeLabel(q.Type)})
	}
	return &filter, labels, nil
}

// Dashboard arma el resumen de inicio: totales, lista de stock bajo, últimos
// movimientos y acumulados de entradas/salidas del último mes.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	counts, err := uc.productRepo.Counts()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	recent, err := uc.movementRepo.Recent(recentMovements)
	if err != nil {
		return nil, err
	}
	oneMonthAgo := time.Now().AddDate(0, dashboardMonthAgo, 0)
	monthIn, monthOut, err := uc.movementRepo.SumQuantitiesSince(oneMonthAgo)
	if err != nil {
		return nil, err
	}

	low := make([]dto.ProductResponse, 0, len(lowStock))
	for _, p := range lowStock {
		low = append(low, ToProductResponse(p))
	}
	movements := make([]dto.ReportRow, 0, len(recent))
	for _, r := range recent {
		movements = append(movements, toReportRow(r))
	}
	return &dto.DashboardResponse{
		TotalProducts:      counts.Total,
		LowStockProducts:   counts.LowStock,
		OutOfStockProducts: counts.OutOfStock,
		LowStock:           low,
		RecentMovements:    movements,
		MonthIn:            monthIn,
		MonthOut:           monthOut,
	}, nil
}

// Alerts lista productos en o bajo su umbral, agotados incluidos, por nombre.
func (uc *UseCase) Alerts(ctx context.Context) (*dto.AlertsResponse, error) {
	products, err := uc.productRepo.ListAtOrBelowThreshold()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return &dto.AlertsResponse{Total: len(items), Items: items}, nil
}

func toReportRow(r repository.MovementReportRow) dto.ReportRow {
	row := dto.ReportRow{
		ID:        r.ID,
		Date:      r.CreatedAt,
		Product:   r.ProductName,
		Barcode:   r.Barcode,
		Type:      r.Type,
		TypeLabel: entity.MovementTypeLabel(r.Type),
		Quantity:  r.Quantity,
		Reason:    r.Reason,
	}
	if r.UserName != nil {
		row.User = *r.UserName
	}
	if r.SupplierName != nil {
		row.Supplier = *r.SupplierName
	}
	return row
}

// ToProductResponse mapea la entidad con sus estados derivados.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Barcode:           p.Barcode,
		UnitPrice:         p.UnitPrice,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		CategoryID:        p.CategoryID,
		LowStock:          p.IsLowStock(),
		OutOfStock:        p.IsOutOfStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
