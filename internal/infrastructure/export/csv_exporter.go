// Package export produce las representaciones descargables del reporte de
// movimientos (CSV y PDF). Ambas consumen las mismas filas que la vista JSON,
// así los tres formatos siempre cuentan la misma historia.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/stock-manager-api/internal/application/dto"
)

// csvHeader columnas del export, en el orden del reporte en pantalla.
var csvHeader = []string{"Fecha", "Producto", "Código", "Tipo", "Cantidad", "Motivo", "Usuario", "Proveedor"}

// CSVExporter serializa el reporte de movimientos como CSV.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Export genera el CSV con cabecera y una fila por movimiento.
// El usuario vacío (borrado) se exporta como "N/A".
func (e *CSVExporter) Export(report *dto.ReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			row.Date.Format("2006-01-02 15:04:05"),
			row.Product,
			row.Barcode,
			row.TypeLabel,
			fmt.Sprintf("%d", row.Quantity),
			row.Reason,
			orNA(row.User),
			row.Supplier,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
