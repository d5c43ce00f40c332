package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
)

type DashboardHandler struct {
	Reports *services.ReportService
}

// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.Reports.Dashboard()
	if err != nil {
		return fail(c, "dashboard.stats.fail", err)
	}
	return ok(c, summary)
}
