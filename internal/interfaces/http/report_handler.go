package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-manager-api/internal/application/dto"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/pkg/validate"
)

// reportService es lo que el handler necesita del caso de uso de reportes.
type reportService interface {
	Movements(ctx context.Context, q dto.ReportQuery) (*dto.ReportResponse, error)
}

// Exporter serializa un reporte ya resuelto (CSV o PDF).
type Exporter interface {
	Export(report *dto.ReportResponse) ([]byte, error)
}

// ReportHandler sirve el reporte de movimientos en JSON, CSV y PDF.
// Los tres formatos salen de la misma consulta: mismos filtros, mismas filas.
type ReportHandler struct {
	reports reportService
	csv     Exporter
	pdf     Exporter
}

// NewReportHandler construye el handler.
func NewReportHandler(reports reportService, csv, pdf Exporter) *ReportHandler {
	return &ReportHandler{reports: reports, csv: csv, pdf: pdf}
}

// Movements godoc
// @Summary      Reporte de movimientos filtrado (solo admin)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date_from   query  string  false  "Fecha desde (2006-01-02)"
// @Param        date_to     query  string  false  "Fecha hasta, inclusive (2006-01-02)"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        type        query  string  false  "Tipo de movimiento (in|out)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	report, err := h.resolve(c)
	if err != nil {
		return err
	}
	if report == nil {
		return nil // respuesta de error ya escrita
	}
	return c.JSON(report)
}

// ExportCSV godoc
// @Summary      Exportar el reporte como CSV (solo admin)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        date_from   query  string  false  "Fecha desde (2006-01-02)"
// @Param        date_to     query  string  false  "Fecha hasta, inclusive (2006-01-02)"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        type        query  string  false  "Tipo de movimiento (in|out)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	return h.export(c, h.csv, "text/csv; charset=utf-8", "csv")
}

// ExportPDF godoc
// @Summary      Exportar el reporte como PDF (solo admin)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date_from   query  string  false  "Fecha desde (2006-01-02)"
// @Param        date_to     query  string  false  "Fecha hasta, inclusive (2006-01-02)"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        type        query  string  false  "Tipo de movimiento (in|out)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, h.pdf, "application/pdf", "pdf")
}

func (h *ReportHandler) export(c *fiber.Ctx, exporter Exporter, contentType, extension string) error {
	report, err := h.resolve(c)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}
	data, err := exporter.Export(report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "movimientos_" + time.Now().Format("20060102_150405") + "." + extension
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// resolve parsea y valida la query y ejecuta el reporte. Si ya respondió un
// error HTTP devuelve (nil, nil).
func (h *ReportHandler) resolve(c *fiber.Ctx) (*dto.ReportResponse, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := validate.Struct(q); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.Message(err)})
	}
	report, err := h.reports.Movements(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: "date_from no puede ser posterior a date_to"})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return report, nil
}
