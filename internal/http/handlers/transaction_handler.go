package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type TransactionHandler struct {
	Ledger *services.LedgerService
}

// GET /api/transactions?sku_id=&type=&start_date=&end_date=&limit=
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	f := repos.TxFilter{
		Type:  domain.TransactionType(c.Query("type")),
		Limit: validate.Limit(c.Query("limit"), 100, 500),
	}
	if v := c.Query("sku_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return badRequest(c, "invalid sku_id")
		}
		f.SKUID = id
	}
	if v := c.Query("start_date"); v != "" {
		d, okDate := validate.Date(v)
		if !okDate {
			return badRequest(c, "start_date must be YYYY-MM-DD")
		}
		f.StartDate = d
	}
	if v := c.Query("end_date"); v != "" {
		d, okDate := validate.Date(v)
		if !okDate {
			return badRequest(c, "end_date must be YYYY-MM-DD")
		}
		f.EndDate = d
	}

	rows, err := h.Ledger.List(f)
	if err != nil {
		return fail(c, "transaction.list.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": rows, "count": len(rows)})
}

// POST /api/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req services.RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	rec, err := h.Ledger.Record(req)
	if err != nil {
		return fail(c, "transaction.create.fail", err)
	}
	applog.Audit(c, "transaction.create", map[string]any{
		"transaction_id": rec.ID,
		"sku_id":         rec.SKUID,
		"type":           string(rec.TransactionType),
		"quantity":       rec.Quantity,
	})
	return created(c, string(rec.TransactionType)+" recorded successfully", rec)
}
