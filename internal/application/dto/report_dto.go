package dto

import "time"

// ReportQuery criterios del reporte de movimientos. Todos opcionales y conjuntivos.
// Las fechas llegan como "2006-01-02"; date_to incluye el día completo.
type ReportQuery struct {
	DateFrom  string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	ProductID string `query:"product_id" validate:"omitempty,uuid4"`
	Type      string `query:"type" validate:"omitempty,oneof=in out"`
}

// ReportRow fila del reporte de movimientos, más reciente primero.
type ReportRow struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Product   string    `json:"product"`
	Barcode   string    `json:"barcode"`
	Type      string    `json:"type"`
	TypeLabel string    `json:"type_label"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	User      string    `json:"user,omitempty"`
	Supplier  string    `json:"supplier,omitempty"`
}

// ReportResponse listado filtrado con los filtros activos que lo produjeron.
type ReportResponse struct {
	Filters []ReportFilterLabel `json:"filters"`
	Total   int                 `json:"total"`
	Rows    []ReportRow         `json:"rows"`
}

// ReportFilterLabel filtro activo en forma legible (se repite en el PDF).
type ReportFilterLabel struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
