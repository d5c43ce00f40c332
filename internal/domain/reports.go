package domain

type DeadStockItem struct {
	SKU
	StockValue        float64 `db:"stock_value" json:"stock_value"`
	LastSaleDate      string  `db:"last_sale_date" json:"last_sale_date,omitempty"`
	DaysSinceLastSale *int64  `db:"days_since_last_sale" json:"days_since_last_sale"`
}

type ReorderItem struct {
	SKU
	Shortage          int `db:"shortage" json:"shortage"`
	SuggestedOrderQty int `db:"suggested_order_qty" json:"suggested_order_qty"`
}

type TopSellingItem struct {
	ID              int64   `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Category        string  `db:"category" json:"category"`
	CurrentQuantity int     `db:"current_quantity" json:"current_quantity"`
	UnitPrice       float64 `db:"unit_price" json:"unit_price"`
	SaleCount       int     `db:"sale_count" json:"sale_count"`
	TotalSold       int     `db:"total_sold" json:"total_sold"`
	Revenue         float64 `db:"revenue" json:"revenue"`
}

type SlowMovingItem struct {
	SKU
	StockValue    float64 `db:"stock_value" json:"stock_value"`
	TotalMovement int     `db:"total_movement" json:"total_movement"`
}

type CategoryStat struct {
	Category      string  `db:"category" json:"category"`
	SKUCount      int     `db:"sku_count" json:"sku_count"`
	TotalQuantity int     `db:"total_quantity" json:"total_quantity"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}

// TodayStat is best-effort dashboard data; the list may be empty on a
// quiet day and consumers must tolerate that.
type TodayStat struct {
	TransactionType TransactionType `db:"transaction_type" json:"transaction_type"`
	Count           int             `db:"count" json:"count"`
	TotalQuantity   int             `db:"total_quantity" json:"total_quantity"`
}

type DashboardOverview struct {
	TotalSKUs      int   `json:"totalSkus"`
	StockValue     int64 `json:"stockValue"`
	ReorderCount   int   `json:"reorderCount"`
	OutOfStock     int   `json:"outOfStock"`
	DeadStockCount int   `json:"deadStockCount"`
	DeadStockValue int64 `json:"deadStockValue"`
}

type DashboardSummary struct {
	Overview           DashboardOverview `json:"overview"`
	RecentTransactions []TransactionRow  `json:"recentTransactions"`
	TodayStats         []TodayStat       `json:"todayStats"`
	CategoryStats      []CategoryStat    `json:"categoryStats"`
}
