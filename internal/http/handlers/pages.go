package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

// PageHandler serves the server-rendered surface: tables and forms over
// the same services the JSON API uses.
type PageHandler struct {
	Registry *services.RegistryService
	Ledger   *services.LedgerService
	Reports  *services.ReportService
}

// GET /
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.Reports.Dashboard()
	if err != nil {
		applog.Error(c, "page.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the dashboard"})
	}
	return render(c, "dashboard", fiber.Map{"Summary": summary})
}

// GET /stock
func (h *PageHandler) StockList(c *fiber.Ctx) error {
	f := repos.SKUFilter{
		Category:     c.Query("category"),
		NameContains: c.Query("search"),
		LowStockOnly: c.Query("low_stock") == "true",
	}
	skus, err := h.Registry.List(f)
	if err != nil {
		applog.Error(c, "page.stock.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load stock"})
	}
	cats, _ := h.Registry.Categories()
	return render(c, "stock", fiber.Map{"SKUs": skus, "Categories": cats, "Filter": f})
}

// GET /stock/add
func (h *PageHandler) StockAdd(c *fiber.Ctx) error {
	return render(c, "stock_form", fiber.Map{"Title": "Add SKU"})
}

// GET /stock/:id/edit
func (h *PageHandler) StockEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "SKU not found"})
	}
	sku, err := h.Registry.Get(int64(id))
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "SKU not found"})
	}
	return render(c, "stock_form", fiber.Map{"Title": "Edit SKU", "SKU": sku})
}

// GET /transactions
func (h *PageHandler) Transactions(c *fiber.Ctx) error {
	skus, err := h.Registry.List(repos.SKUFilter{})
	if err != nil {
		applog.Error(c, "page.transactions.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load SKUs"})
	}
	return render(c, "transactions", fiber.Map{"SKUs": skus})
}

// GET /transactions/history
func (h *PageHandler) TransactionHistory(c *fiber.Ctx) error {
	rows, err := h.Ledger.List(repos.TxFilter{
		Type:  domain.TransactionType(c.Query("type")),
		Limit: 100,
	})
	if err != nil {
		applog.Error(c, "page.history.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load transactions"})
	}
	return render(c, "transaction_history", fiber.Map{"Rows": rows})
}

// GET /reports
func (h *PageHandler) ReportsPage(c *fiber.Ctx) error {
	dead, deadSum, err := h.Reports.DeadStock(services.DeadStockWindowDays)
	if err != nil {
		applog.Error(c, "page.reports.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load reports"})
	}
	reorder, reorderSum, err := h.Reports.Reorder()
	if err != nil {
		applog.Error(c, "page.reports.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load reports"})
	}
	top, err := h.Reports.TopSelling(services.DefaultWindowDays, services.DefaultReportLimit)
	if err != nil {
		applog.Error(c, "page.reports.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load reports"})
	}
	slow, err := h.Reports.SlowMoving(services.DefaultWindowDays, services.DefaultReportLimit)
	if err != nil {
		applog.Error(c, "page.reports.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load reports"})
	}
	return render(c, "reports", fiber.Map{
		"DeadStock":      dead,
		"DeadStockSum":   deadSum,
		"ReorderItems":   reorder,
		"ReorderSummary": reorderSum,
		"TopSelling":     top,
		"SlowMoving":     slow,
	})
}
