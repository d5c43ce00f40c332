package domain

type SKU struct {
	ID              int64   `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Category        string  `db:"category" json:"category"`
	ReorderLevel    int     `db:"reorder_level" json:"reorder_level"`
	CurrentQuantity int     `db:"current_quantity" json:"current_quantity"`
	UnitPrice       float64 `db:"unit_price" json:"unit_price"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
}

type TransactionType string

const (
	TxPurchase TransactionType = "PURCHASE"
	TxSale     TransactionType = "SALE"
	TxDamage   TransactionType = "DAMAGE"
	TxReturn   TransactionType = "RETURN"
)

// Valid reports whether t is one of the four closed transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TxPurchase, TxSale, TxDamage, TxReturn:
		return true
	}
	return false
}

// Inbound reports whether t increases stock. PURCHASE and RETURN add,
// SALE and DAMAGE subtract.
func (t TransactionType) Inbound() bool {
	return t == TxPurchase || t == TxReturn
}

type Transaction struct {
	ID              int64           `db:"id" json:"id"`
	SKUID           int64           `db:"sku_id" json:"sku_id"`
	TransactionType TransactionType `db:"transaction_type" json:"transaction_type"`
	Quantity        int             `db:"quantity" json:"quantity"`
	Reason          string          `db:"reason" json:"reason"`
	Notes           string          `db:"notes" json:"notes"`
	CreatedAt       string          `db:"created_at" json:"created_at"`
}

// TransactionRow is a ledger entry joined with its SKU for display.
type TransactionRow struct {
	Transaction
	SKUName     string `db:"sku_name" json:"sku_name"`
	SKUCategory string `db:"sku_category" json:"sku_category"`
}

// RecordedTransaction is what the ledger returns after a write: the new
// row plus the SKU quantity after the fold.
type RecordedTransaction struct {
	TransactionRow
	NewQuantity int `db:"new_quantity" json:"new_quantity"`
}
