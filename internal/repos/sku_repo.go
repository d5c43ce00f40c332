package repos

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

type SKURepo struct{ db *sqlx.DB }

func NewSKURepo(db *sqlx.DB) *SKURepo { return &SKURepo{db: db} }

// SKUFilter predicates compose conjunctively. The zero value matches
// every SKU.
type SKUFilter struct {
	Category     string
	NameContains string
	LowStockOnly bool
}

// SKUPatch carries only the fields an update intends to change.
// current_quantity is deliberately absent; the ledger owns it.
type SKUPatch struct {
	Name         *string
	Category     *string
	ReorderLevel *int
	UnitPrice    *float64
}

func (p SKUPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.ReorderLevel == nil && p.UnitPrice == nil
}

const skuColumns = `id, name, category, reorder_level, current_quantity, unit_price, created_at`

func (r *SKURepo) List(f SKUFilter) ([]domain.SKU, error) {
	where := `1=1`
	args := []any{}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.NameContains != "" {
		where += ` AND LOWER(name) LIKE ?`
		args = append(args, "%"+strings.ToLower(f.NameContains)+"%")
	}
	if f.LowStockOnly {
		where += ` AND current_quantity <= reorder_level`
	}

	out := []domain.SKU{}
	err := r.db.Select(&out, `
	  SELECT `+skuColumns+`
	  FROM skus
	  WHERE `+where+`
	  ORDER BY name
	`, args...)
	return out, err
}

func (r *SKURepo) Get(id int64) (domain.SKU, error) {
	var s domain.SKU
	err := r.db.Get(&s, `SELECT `+skuColumns+` FROM skus WHERE id = ?`, id)
	return s, err
}

func (r *SKURepo) Categories() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `SELECT DISTINCT category FROM skus ORDER BY category`)
	return out, err
}

func (r *SKURepo) Create(name, category string, reorderLevel, currentQuantity int, unitPrice float64) (domain.SKU, error) {
	res, err := r.db.Exec(`
	  INSERT INTO skus(name, category, reorder_level, current_quantity, unit_price)
	  VALUES(?, ?, ?, ?, ?)
	`, name, category, reorderLevel, currentQuantity, unitPrice)
	if err != nil {
		return domain.SKU{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.SKU{}, err
	}
	return r.Get(id)
}

func (r *SKURepo) Update(id int64, p SKUPatch) (domain.SKU, error) {
	set := ``
	args := []any{}
	add := func(frag string, v any) {
		if set != "" {
			set += ", "
		}
		set += frag
		args = append(args, v)
	}
	if p.Name != nil {
		add(`name = ?`, *p.Name)
	}
	if p.Category != nil {
		add(`category = ?`, *p.Category)
	}
	if p.ReorderLevel != nil {
		add(`reorder_level = ?`, *p.ReorderLevel)
	}
	if p.UnitPrice != nil {
		add(`unit_price = ?`, *p.UnitPrice)
	}

	args = append(args, id)
	res, err := r.db.Exec(`UPDATE skus SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return domain.SKU{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.SKU{}, sql.ErrNoRows
	}
	return r.Get(id)
}

// TransactionCount reports how many ledger rows reference the SKU; a
// non-zero count blocks deletion.
func (r *SKURepo) TransactionCount(id int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM transactions WHERE sku_id = ?`, id)
	return n, err
}

func (r *SKURepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM skus WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
