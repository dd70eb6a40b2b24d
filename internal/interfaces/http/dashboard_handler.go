package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-manager-api/internal/application/dto"
)

// dashboardService es lo que el handler necesita para el panel y las alertas.
type dashboardService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	Alerts(ctx context.Context) (*dto.AlertsResponse, error)
}

// DashboardHandler sirve el panel de resumen y las alertas de stock (protegido).
type DashboardHandler struct {
	svc dashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Panel de resumen: totales, stock bajo y movimientos recientes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.svc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Productos en o por debajo de su umbral de stock
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Router       /api/alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.svc.Alerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
