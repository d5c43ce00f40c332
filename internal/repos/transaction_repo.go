package repos

import (
	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

type TransactionRepo struct{ db *sqlx.DB }

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// TxFilter predicates compose conjunctively. StartDate/EndDate are
// calendar dates; EndDate is inclusive through end of day.
type TxFilter struct {
	SKUID     int64
	Type      domain.TransactionType
	StartDate string
	EndDate   string
	Limit     int
}

const txJoin = `
  SELECT t.id, t.sku_id, t.transaction_type, t.quantity,
         COALESCE(t.reason,'') AS reason, COALESCE(t.notes,'') AS notes, t.created_at,
         s.name AS sku_name, s.category AS sku_category
  FROM transactions t
  JOIN skus s ON t.sku_id = s.id
`

func (r *TransactionRepo) List(f TxFilter) ([]domain.TransactionRow, error) {
	where := `1=1`
	args := []any{}
	if f.SKUID != 0 {
		where += ` AND t.sku_id = ?`
		args = append(args, f.SKUID)
	}
	if f.Type != "" {
		where += ` AND t.transaction_type = ?`
		args = append(args, f.Type)
	}
	if f.StartDate != "" {
		where += ` AND t.created_at >= ?`
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		where += ` AND t.created_at <= ?`
		args = append(args, f.EndDate+" 23:59:59")
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	args = append(args, f.Limit)

	out := []domain.TransactionRow{}
	err := r.db.Select(&out, txJoin+`
	  WHERE `+where+`
	  ORDER BY t.created_at DESC, t.id DESC
	  LIMIT ?
	`, args...)
	return out, err
}

// Record appends a ledger row and folds its signed quantity into the
// SKU in one database transaction, so a failure of either statement
// rolls back both.
func (r *TransactionRepo) Record(skuID int64, txType domain.TransactionType, qty int, reason, notes string) (domain.RecordedTransaction, error) {
	delta := qty
	if !txType.Inbound() {
		delta = -qty
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return domain.RecordedTransaction{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO transactions(sku_id, transaction_type, quantity, reason, notes)
	  VALUES(?, ?, ?, NULLIF(?,''), NULLIF(?,''))
	`, skuID, txType, qty, reason, notes)
	if err != nil {
		return domain.RecordedTransaction{}, err
	}
	txID, err := res.LastInsertId()
	if err != nil {
		return domain.RecordedTransaction{}, err
	}

	if _, err := tx.Exec(`
	  UPDATE skus SET current_quantity = current_quantity + ? WHERE id = ?
	`, delta, skuID); err != nil {
		return domain.RecordedTransaction{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.RecordedTransaction{}, err
	}

	var out domain.RecordedTransaction
	err = r.db.Get(&out, `
	  SELECT t.id, t.sku_id, t.transaction_type, t.quantity,
	         COALESCE(t.reason,'') AS reason, COALESCE(t.notes,'') AS notes, t.created_at,
	         s.name AS sku_name, s.category AS sku_category,
	         s.current_quantity AS new_quantity
	  FROM transactions t
	  JOIN skus s ON t.sku_id = s.id
	  WHERE t.id = ?
	`, txID)
	return out, err
}
