package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/repos"
	"stockroom/internal/services"
)

// reportdb seeds a catalog with known movement history:
//   - "Fresh Seller": stocked, sold 3 days ago
//   - "Stale":        stocked, sold 120 days ago
//   - "Never Sold":   stocked, no sales at all
//   - "Empty":        at zero, below reorder level
func reportdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db := memdb(t)
	db.MustExec(`INSERT INTO skus(name,category,reorder_level,current_quantity,unit_price) VALUES
	  ('Fresh Seller','Tiles',10,40,50),
	  ('Stale','Tiles',10,20,100),
	  ('Never Sold','Hardware',10,30,10),
	  ('Empty','Hardware',10,0,25)`)
	db.MustExec(`INSERT INTO transactions(sku_id,transaction_type,quantity,created_at) VALUES
	  (1,'SALE',5,datetime('now','-3 days')),
	  (1,'PURCHASE',10,datetime('now','-5 days')),
	  (2,'SALE',2,datetime('now','-120 days'))`)
	return db
}

func newReports(t *testing.T) (*sqlx.DB, *services.ReportService) {
	t.Helper()
	db := reportdb(t)
	return db, services.NewReportService(repos.NewReportRepo(db))
}

func TestReports_DeadStock(t *testing.T) {
	_, svc := newReports(t)

	items, sum, err := svc.DeadStock(90)
	if err != nil {
		t.Fatal(err)
	}
	// "Fresh Seller" sold inside the window, "Empty" has no stock;
	// only "Stale" and "Never Sold" qualify, never-sold first.
	if len(items) != 2 {
		t.Fatalf("want 2 dead-stock items, got %+v", items)
	}
	if items[0].Name != "Never Sold" || items[0].DaysSinceLastSale != nil {
		t.Fatalf("never-sold must sort first with null days, got %+v", items[0])
	}
	if items[1].Name != "Stale" || items[1].DaysSinceLastSale == nil || *items[1].DaysSinceLastSale < 119 {
		t.Fatalf("stale item wrong: %+v", items[1])
	}
	// 20*100 + 30*10 = 2300
	if sum.Count != 2 || sum.TotalValue != 2300 {
		t.Fatalf("summary wrong: %+v", sum)
	}
}

func TestReports_Reorder(t *testing.T) {
	_, svc := newReports(t)

	items, sum, err := svc.Reorder()
	if err != nil {
		t.Fatal(err)
	}
	// Only "Empty" (0 <= 10) is at or below its reorder level.
	if len(items) != 1 || items[0].Name != "Empty" {
		t.Fatalf("want only the empty SKU, got %+v", items)
	}
	if items[0].Shortage != 10 || items[0].SuggestedOrderQty != 20 {
		t.Fatalf("shortage math wrong: %+v", items[0])
	}
	if sum.OutOfStock != 1 {
		t.Fatalf("summary wrong: %+v", sum)
	}
}

func TestReports_TopSelling(t *testing.T) {
	_, svc := newReports(t)

	items, err := svc.TopSelling(30, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Fresh Seller" {
		t.Fatalf("want only the recent seller, got %+v", items)
	}
	if items[0].SaleCount != 1 || items[0].TotalSold != 5 || items[0].Revenue != 250 {
		t.Fatalf("sale aggregates wrong: %+v", items[0])
	}
}

func TestReports_SlowMoving(t *testing.T) {
	_, svc := newReports(t)

	items, err := svc.SlowMoving(30, 10)
	if err != nil {
		t.Fatal(err)
	}
	// Zero-movement SKUs first ("Stale" 20*100=2000 outranks
	// "Never Sold" 30*10=300 on value), then "Fresh Seller" with 15
	// units moved. "Empty" is excluded outright.
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %+v", items)
	}
	if items[0].Name != "Stale" || items[0].TotalMovement != 0 {
		t.Fatalf("ordering wrong: %+v", items)
	}
	if items[1].Name != "Never Sold" || items[2].Name != "Fresh Seller" || items[2].TotalMovement != 15 {
		t.Fatalf("ordering wrong: %+v", items)
	}
}

func TestReports_Dashboard(t *testing.T) {
	_, svc := newReports(t)

	sum, err := svc.Dashboard()
	if err != nil {
		t.Fatal(err)
	}
	ov := sum.Overview
	if ov.TotalSKUs != 4 {
		t.Fatalf("totalSkus wrong: %+v", ov)
	}
	// 40*50 + 20*100 + 30*10 + 0*25 = 4300
	if ov.StockValue != 4300 {
		t.Fatalf("stockValue wrong: %+v", ov)
	}
	if ov.ReorderCount != 1 || ov.OutOfStock != 1 {
		t.Fatalf("reorder counts wrong: %+v", ov)
	}
	if ov.DeadStockCount != 2 || ov.DeadStockValue != 2300 {
		t.Fatalf("dead stock wrong: %+v", ov)
	}
	if len(sum.RecentTransactions) != 3 {
		t.Fatalf("want 3 recent transactions, got %d", len(sum.RecentTransactions))
	}
	if len(sum.CategoryStats) != 2 || sum.CategoryStats[0].Category != "Tiles" {
		t.Fatalf("category breakdown wrong: %+v", sum.CategoryStats)
	}
}
