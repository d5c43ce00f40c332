package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type SKUHandler struct {
	Registry *services.RegistryService
}

// GET /api/skus?category=&search=&low_stock=
func (h *SKUHandler) List(c *fiber.Ctx) error {
	f := repos.SKUFilter{
		Category:     c.Query("category"),
		NameContains: c.Query("search"),
		LowStockOnly: c.Query("low_stock") == "true",
	}
	skus, err := h.Registry.List(f)
	if err != nil {
		return fail(c, "sku.list.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": skus, "count": len(skus)})
}

// GET /api/skus/categories
func (h *SKUHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Registry.Categories()
	if err != nil {
		return fail(c, "sku.categories.fail", err)
	}
	return ok(c, cats)
}

// GET /api/skus/:id
func (h *SKUHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid SKU id")
	}
	sku, err := h.Registry.Get(int64(id))
	if err != nil {
		return fail(c, "sku.get.fail", err)
	}
	return ok(c, sku)
}

// POST /api/skus
func (h *SKUHandler) Create(c *fiber.Ctx) error {
	var req services.CreateSKURequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	sku, err := h.Registry.Create(req)
	if err != nil {
		return fail(c, "sku.create.fail", err)
	}
	applog.Audit(c, "sku.create", map[string]any{"sku_id": sku.ID, "name": sku.Name})
	return created(c, "", sku)
}

// PUT /api/skus/:id
func (h *SKUHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid SKU id")
	}
	var req services.UpdateSKURequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	sku, err := h.Registry.Update(int64(id), req)
	if err != nil {
		return fail(c, "sku.update.fail", err)
	}
	applog.Audit(c, "sku.update", map[string]any{"sku_id": sku.ID})
	return ok(c, sku)
}

// DELETE /api/skus/:id
func (h *SKUHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid SKU id")
	}
	if err := h.Registry.Delete(int64(id)); err != nil {
		return fail(c, "sku.delete.fail", err)
	}
	applog.Audit(c, "sku.delete", map[string]any{"sku_id": id})
	return c.JSON(fiber.Map{"success": true, "message": "SKU deleted"})
}
