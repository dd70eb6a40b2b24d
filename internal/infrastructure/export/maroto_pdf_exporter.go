package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-manager-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFExporter genera el reporte de movimientos en PDF usando Maroto v2.
type MarotoPDFExporter struct{}

func NewMarotoPDFExporter() *MarotoPDFExporter { return &MarotoPDFExporter{} }

// Export genera el PDF y devuelve sus bytes. Mismo contenido que el CSV:
// título centrado, filtros activos y la tabla de movimientos.
func (g *MarotoPDFExporter) Export(report *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Movimientos de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	for _, r := range filterRows(report.Filters) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(report.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("Reporte de Movimientos de Stock", props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	))
}

// filterRows: una línea "Nombre: valor" por filtro activo. Sin filtros no se
// imprime nada, igual que en pantalla.
func filterRows(filters []dto.ReportFilterLabel) []core.Row {
	rows := make([]core.Row, 0, len(filters))
	for _, f := range filters {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(f.Name+": "+f.Value, props.Text{
				Size: 9, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Motivo", 2, align.Left),
		h("Usuario", 2, align.Left),
	)
}

// tableRows: una fila por movimiento, Producto como "Nombre (código)".
func tableRows(reportRows []dto.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(reportRows))
	for _, r := range reportRows {
		product := r.Product
		if r.Barcode != "" {
			product = fmt.Sprintf("%s (%s)", r.Product, r.Barcode)
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				r.Date.Format("2006-01-02 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				product,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.TypeLabel,
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.Quantity),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.Reason,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				orNA(r.User),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

func totalRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de movimientos: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		}),
	))
}
