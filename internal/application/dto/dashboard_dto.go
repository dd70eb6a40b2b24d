package dto

// DashboardResponse resumen de la página de inicio: totales, productos en
// alerta, últimos movimientos y acumulados de entradas/salidas del último mes.
type DashboardResponse struct {
	TotalProducts      int               `json:"total_products"`
	LowStockProducts   int               `json:"low_stock_products"`
	OutOfStockProducts int               `json:"out_of_stock_products"`
	LowStock           []ProductResponse `json:"low_stock"`
	RecentMovements    []ReportRow       `json:"recent_movements"`
	MonthIn            int               `json:"month_in"`
	MonthOut           int               `json:"month_out"`
}

// AlertsResponse listado de productos en o bajo el umbral (incluye agotados).
type AlertsResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}
