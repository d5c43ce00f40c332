package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"stockroom/internal/http/handlers"
	"stockroom/internal/repos"
)

// newAPIApp wires the JSON API over a seeded in-memory database.
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	api := app.Group("/api")
	api.Get("/skus", deps.SKUHandler.List)
	api.Get("/skus/categories", deps.SKUHandler.Categories)
	api.Get("/skus/:id", deps.SKUHandler.Get)
	api.Post("/skus", deps.SKUHandler.Create)
	api.Put("/skus/:id", deps.SKUHandler.Update)
	api.Delete("/skus/:id", deps.SKUHandler.Delete)
	api.Get("/transactions", deps.TransactionHandler.List)
	api.Post("/transactions", deps.TransactionHandler.Create)
	api.Get("/dashboard/stats", deps.DashboardHandler.Stats)
	api.Get("/reports/dead-stock", deps.ReportHandler.DeadStock)
	api.Get("/reports/reorder", deps.ReportHandler.Reorder)
	api.Get("/reports/top-selling", deps.ReportHandler.TopSelling)
	api.Get("/reports/slow-moving", deps.ReportHandler.SlowMoving)

	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Count   int             `json:"count"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("bad envelope %s: %s", path, raw)
	}
	return resp.StatusCode, env
}

func TestAPI_SKUListAndGet(t *testing.T) {
	app := newAPIApp(t)

	code, env := doJSON(t, app, "GET", "/api/skus", "")
	if code != http.StatusOK || !env.Success || env.Count == 0 {
		t.Fatalf("list failed: code=%d env=%+v", code, env)
	}

	code, env = doJSON(t, app, "GET", "/api/skus?category=Tiles&low_stock=true", "")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("filtered list failed: code=%d", code)
	}
	var skus []struct {
		Category        string `json:"category"`
		CurrentQuantity int    `json:"current_quantity"`
		ReorderLevel    int    `json:"reorder_level"`
	}
	if err := json.Unmarshal(env.Data, &skus); err != nil {
		t.Fatal(err)
	}
	for _, s := range skus {
		if s.Category != "Tiles" || s.CurrentQuantity > s.ReorderLevel {
			t.Fatalf("filter leak: %+v", s)
		}
	}

	code, env = doJSON(t, app, "GET", "/api/skus/99999", "")
	if code != http.StatusNotFound || env.Success {
		t.Fatalf("missing sku: want 404 envelope, got %d %+v", code, env)
	}

	code, _ = doJSON(t, app, "GET", "/api/skus/categories", "")
	if code != http.StatusOK {
		t.Fatalf("categories: want 200, got %d", code)
	}
}

func TestAPI_SKUCreateUpdateDelete(t *testing.T) {
	app := newAPIApp(t)

	code, env := doJSON(t, app, "POST", "/api/skus", `{"name":"Grout White 5kg","category":"Adhesives","unit_price":12.5}`)
	if code != http.StatusCreated || !env.Success {
		t.Fatalf("create: want 201, got %d %+v", code, env)
	}
	var sku struct {
		ID           int64 `json:"id"`
		ReorderLevel int   `json:"reorder_level"`
	}
	if err := json.Unmarshal(env.Data, &sku); err != nil {
		t.Fatal(err)
	}
	if sku.ID == 0 || sku.ReorderLevel != 10 {
		t.Fatalf("create defaults wrong: %+v", sku)
	}

	code, env = doJSON(t, app, "POST", "/api/skus", `{"name":"No Category"}`)
	if code != http.StatusBadRequest || env.Success {
		t.Fatalf("missing category: want 400, got %d", code)
	}

	idPath := "/api/skus/" + itoa(sku.ID)
	code, env = doJSON(t, app, "PUT", idPath, `{"unit_price":15}`)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("update: want 200, got %d %+v", code, env)
	}
	code, env = doJSON(t, app, "PUT", idPath, `{}`)
	if code != http.StatusBadRequest || env.Success {
		t.Fatalf("empty patch: want 400, got %d", code)
	}

	code, env = doJSON(t, app, "DELETE", idPath, "")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("delete fresh sku: want 200, got %d %+v", code, env)
	}

	// seeded SKU 1 has ledger history and must refuse deletion
	code, env = doJSON(t, app, "DELETE", "/api/skus/1", "")
	if code != http.StatusConflict || env.Success {
		t.Fatalf("delete referenced sku: want 409, got %d %+v", code, env)
	}
	code, _ = doJSON(t, app, "GET", "/api/skus/1", "")
	if code != http.StatusOK {
		t.Fatalf("sku must survive blocked delete, got %d", code)
	}
}

func TestAPI_Transactions(t *testing.T) {
	app := newAPIApp(t)

	code, env := doJSON(t, app, "POST", "/api/transactions", `{"sku_id":1,"transaction_type":"PURCHASE","quantity":10,"reason":"Supplier Delivery"}`)
	if code != http.StatusCreated || !env.Success {
		t.Fatalf("record: want 201, got %d %+v", code, env)
	}
	var rec struct {
		NewQuantity int    `json:"new_quantity"`
		SKUName     string `json:"sku_name"`
	}
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		t.Fatal(err)
	}
	// seed starts SKU 1 at 120
	if rec.NewQuantity != 130 || rec.SKUName == "" {
		t.Fatalf("enriched response wrong: %+v", rec)
	}

	code, env = doJSON(t, app, "POST", "/api/transactions", `{"sku_id":1,"transaction_type":"TRANSFER","quantity":5}`)
	if code != http.StatusBadRequest || env.Success {
		t.Fatalf("bad type: want 400, got %d", code)
	}
	code, _ = doJSON(t, app, "POST", "/api/transactions", `{"sku_id":1,"transaction_type":"SALE","quantity":0}`)
	if code != http.StatusBadRequest {
		t.Fatalf("zero quantity: want 400, got %d", code)
	}
	code, _ = doJSON(t, app, "POST", "/api/transactions", `{"sku_id":99999,"transaction_type":"SALE","quantity":1}`)
	if code != http.StatusNotFound {
		t.Fatalf("unknown sku: want 404, got %d", code)
	}

	code, env = doJSON(t, app, "GET", "/api/transactions?sku_id=1&type=PURCHASE", "")
	if code != http.StatusOK || !env.Success || env.Count == 0 {
		t.Fatalf("list: code=%d env=%+v", code, env)
	}
	code, _ = doJSON(t, app, "GET", "/api/transactions?start_date=notadate", "")
	if code != http.StatusBadRequest {
		t.Fatalf("malformed date: want 400, got %d", code)
	}
}

func TestAPI_DashboardAndReports(t *testing.T) {
	app := newAPIApp(t)

	code, env := doJSON(t, app, "GET", "/api/dashboard/stats", "")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("dashboard: code=%d env=%+v", code, env)
	}
	var sum struct {
		Overview struct {
			TotalSKUs  int   `json:"totalSkus"`
			StockValue int64 `json:"stockValue"`
		} `json:"overview"`
	}
	if err := json.Unmarshal(env.Data, &sum); err != nil {
		t.Fatal(err)
	}
	if sum.Overview.TotalSKUs != 14 || sum.Overview.StockValue <= 0 {
		t.Fatalf("overview wrong: %+v", sum.Overview)
	}

	for _, path := range []string{
		"/api/reports/dead-stock",
		"/api/reports/reorder",
		"/api/reports/top-selling?days=30",
		"/api/reports/slow-moving?days=30",
	} {
		code, env := doJSON(t, app, "GET", path, "")
		if code != http.StatusOK || !env.Success {
			t.Fatalf("%s: code=%d env=%+v", path, code, env)
		}
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
