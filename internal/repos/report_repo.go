package repos

import (
	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

// ReportRepo holds the read-only aggregations. Date windows arrive as
// precomputed cutoff timestamps (UTC "YYYY-MM-DD HH:MM:SS") so they
// compare correctly against sqlite's text CURRENT_TIMESTAMP.
type ReportRepo struct{ db *sqlx.DB }

func NewReportRepo(db *sqlx.DB) *ReportRepo { return &ReportRepo{db: db} }

const deadStockWhere = `
  s.id NOT IN (
    SELECT DISTINCT sku_id FROM transactions
    WHERE transaction_type = 'SALE' AND created_at >= ?
  )
  AND s.current_quantity > 0
`

func (r *ReportRepo) TotalSKUs() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM skus`)
	return n, err
}

func (r *ReportRepo) StockValue() (float64, error) {
	var v float64
	err := r.db.Get(&v, `SELECT COALESCE(SUM(current_quantity * unit_price), 0) FROM skus`)
	return v, err
}

func (r *ReportRepo) ReorderCount() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM skus WHERE current_quantity <= reorder_level`)
	return n, err
}

func (r *ReportRepo) OutOfStockCount() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM skus WHERE current_quantity = 0`)
	return n, err
}

func (r *ReportRepo) DeadStockCount(cutoff string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM skus s WHERE `+deadStockWhere, cutoff)
	return n, err
}

func (r *ReportRepo) DeadStockValue(cutoff string) (float64, error) {
	var v float64
	err := r.db.Get(&v, `
	  SELECT COALESCE(SUM(s.current_quantity * s.unit_price), 0)
	  FROM skus s WHERE `+deadStockWhere, cutoff)
	return v, err
}

func (r *ReportRepo) RecentTransactions(limit int) ([]domain.TransactionRow, error) {
	out := []domain.TransactionRow{}
	err := r.db.Select(&out, txJoin+`
	  ORDER BY t.created_at DESC, t.id DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *ReportRepo) TodayStats() ([]domain.TodayStat, error) {
	out := []domain.TodayStat{}
	err := r.db.Select(&out, `
	  SELECT transaction_type, COUNT(*) AS count, SUM(quantity) AS total_quantity
	  FROM transactions
	  WHERE DATE(created_at) = DATE('now')
	  GROUP BY transaction_type
	`)
	return out, err
}

func (r *ReportRepo) CategoryStats() ([]domain.CategoryStat, error) {
	out := []domain.CategoryStat{}
	err := r.db.Select(&out, `
	  SELECT category, COUNT(*) AS sku_count,
	         SUM(current_quantity) AS total_quantity,
	         SUM(current_quantity * unit_price) AS total_value
	  FROM skus
	  GROUP BY category
	  ORDER BY total_value DESC
	`)
	return out, err
}

// DeadStock lists stocked SKUs with no SALE since the cutoff, never-sold
// first, then by staleness.
func (r *ReportRepo) DeadStock(cutoff string) ([]domain.DeadStockItem, error) {
	out := []domain.DeadStockItem{}
	err := r.db.Select(&out, `
	  SELECT s.id, s.name, s.category, s.reorder_level, s.current_quantity, s.unit_price, s.created_at,
	         (s.current_quantity * s.unit_price) AS stock_value,
	         COALESCE((
	           SELECT MAX(created_at) FROM transactions
	           WHERE sku_id = s.id AND transaction_type = 'SALE'
	         ), '') AS last_sale_date,
	         (
	           SELECT CAST(julianday('now') - julianday(MAX(created_at)) AS INTEGER)
	           FROM transactions
	           WHERE sku_id = s.id AND transaction_type = 'SALE'
	         ) AS days_since_last_sale
	  FROM skus s
	  WHERE `+deadStockWhere+`
	  ORDER BY days_since_last_sale DESC NULLS FIRST
	`, cutoff)
	return out, err
}

// Reorder lists SKUs at or below their reorder level, out-of-stock
// first, then by shortage.
func (r *ReportRepo) Reorder() ([]domain.ReorderItem, error) {
	out := []domain.ReorderItem{}
	err := r.db.Select(&out, `
	  SELECT s.id, s.name, s.category, s.reorder_level, s.current_quantity, s.unit_price, s.created_at,
	         (s.reorder_level - s.current_quantity) AS shortage,
	         (s.reorder_level * 2) AS suggested_order_qty
	  FROM skus s
	  WHERE s.current_quantity <= s.reorder_level
	  ORDER BY CASE WHEN s.current_quantity = 0 THEN 0 ELSE 1 END, shortage DESC
	`)
	return out, err
}

func (r *ReportRepo) TopSelling(cutoff string, limit int) ([]domain.TopSellingItem, error) {
	out := []domain.TopSellingItem{}
	err := r.db.Select(&out, `
	  SELECT s.id, s.name, s.category, s.current_quantity, s.unit_price,
	         COUNT(t.id) AS sale_count,
	         SUM(t.quantity) AS total_sold,
	         SUM(t.quantity * s.unit_price) AS revenue
	  FROM skus s
	  JOIN transactions t ON s.id = t.sku_id
	  WHERE t.transaction_type = 'SALE' AND t.created_at >= ?
	  GROUP BY s.id, s.name, s.category, s.current_quantity, s.unit_price
	  ORDER BY total_sold DESC
	  LIMIT ?
	`, cutoff, limit)
	return out, err
}

// SlowMoving counts movement of every type inside the window; zero
// movement sorts first, ties broken by value at risk.
func (r *ReportRepo) SlowMoving(cutoff string, limit int) ([]domain.SlowMovingItem, error) {
	out := []domain.SlowMovingItem{}
	err := r.db.Select(&out, `
	  SELECT s.id, s.name, s.category, s.reorder_level, s.current_quantity, s.unit_price, s.created_at,
	         (s.current_quantity * s.unit_price) AS stock_value,
	         COALESCE((
	           SELECT SUM(quantity) FROM transactions
	           WHERE sku_id = s.id AND created_at >= ?
	         ), 0) AS total_movement
	  FROM skus s
	  WHERE s.current_quantity > 0
	  ORDER BY total_movement ASC, stock_value DESC
	  LIMIT ?
	`, cutoff, limit)
	return out, err
}
