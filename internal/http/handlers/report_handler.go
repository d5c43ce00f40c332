package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// GET /api/reports/dead-stock
func (h *ReportHandler) DeadStock(c *fiber.Ctx) error {
	days := validate.Days(c.Query("days"), services.DeadStockWindowDays)
	items, summary, err := h.Reports.DeadStock(days)
	if err != nil {
		return fail(c, "report.deadstock.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "summary": summary})
}

// GET /api/reports/reorder
func (h *ReportHandler) Reorder(c *fiber.Ctx) error {
	items, summary, err := h.Reports.Reorder()
	if err != nil {
		return fail(c, "report.reorder.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "summary": summary})
}

// GET /api/reports/top-selling?days=N
func (h *ReportHandler) TopSelling(c *fiber.Ctx) error {
	days := validate.Days(c.Query("days"), services.DefaultWindowDays)
	items, err := h.Reports.TopSelling(days, services.DefaultReportLimit)
	if err != nil {
		return fail(c, "report.topselling.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "period": fmt.Sprintf("Last %d days", days)})
}

// GET /api/reports/slow-moving?days=N
func (h *ReportHandler) SlowMoving(c *fiber.Ctx) error {
	days := validate.Days(c.Query("days"), services.DefaultWindowDays)
	items, err := h.Reports.SlowMoving(days, services.DefaultReportLimit)
	if err != nil {
		return fail(c, "report.slowmoving.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "period": fmt.Sprintf("Last %d days", days)})
}
