package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite writes serialize anyway; one connection also keeps :memory:
	// databases visible across the pool.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog and ledger if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- SKU catalog; current_quantity is the running fold of the ledger
CREATE TABLE IF NOT EXISTS skus(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  reorder_level INTEGER NOT NULL DEFAULT 10 CHECK (reorder_level >= 0),
  current_quantity INTEGER NOT NULL DEFAULT 0,
  unit_price NUMERIC NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_skus_category ON skus(category);
CREATE INDEX IF NOT EXISTS idx_skus_name     ON skus(LOWER(name));

-- Append-only stock movement ledger
CREATE TABLE IF NOT EXISTS transactions(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sku_id INTEGER NOT NULL REFERENCES skus(id),
  transaction_type TEXT NOT NULL CHECK (transaction_type IN ('PURCHASE','SALE','DAMAGE','RETURN')),
  quantity INTEGER NOT NULL CHECK (quantity > 0),
  reason TEXT,
  notes TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_transactions_sku        ON transactions(sku_id);
CREATE INDEX IF NOT EXISTS idx_transactions_type       ON transactions(transaction_type);
CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM skus`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo SKUs and transactions")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO skus(name,category,reorder_level,current_quantity,unit_price) VALUES
	  ('Ceramic Floor Tile 2x2 White','Tiles',50,120,45),
	  ('Vitrified Tile 2x2 Marble Look','Tiles',30,25,85),
	  ('Wall Tile 1x1 Blue Mosaic','Tiles',40,8,35),
	  ('Outdoor Tile Anti-Skid Grey','Tiles',20,45,65),
	  ('Sunmica Sheet White Glossy 8x4','Laminates',25,60,450),
	  ('Laminate Sheet Wood Grain Oak','Laminates',20,5,520),
	  ('HPL Sheet Solid Black Matte','Laminates',15,30,680),
	  ('Door Handle SS Premium','Hardware',30,85,250),
	  ('Cabinet Hinges Soft Close (Pair)','Hardware',50,12,120),
	  ('Drawer Slide 18 inch','Hardware',40,65,180),
	  ('Door Lock Mortise 3 Lever','Hardware',25,3,450),
	  ('Plywood 8x4 Marine Grade','Plywood',10,22,2800),
	  ('Plywood 8x4 Commercial','Plywood',15,35,1200),
	  ('MDF Board 8x4 18mm','Plywood',20,0,950)`)

	tx.MustExec(`INSERT INTO transactions(sku_id,transaction_type,quantity,reason,notes,created_at) VALUES
	  (1,'SALE',20,'Customer Order','Sold to Sharma Contractors',datetime('now','-7 days')),
	  (4,'SALE',10,'Customer Order','Terrace flooring project',datetime('now','-8 days')),
	  (8,'SALE',15,'Customer Order','Bulk order for new building',datetime('now','-9 days')),
	  (1,'PURCHASE',50,'Supplier Delivery','From Kajaria - Invoice #4521',datetime('now','-12 days')),
	  (5,'PURCHASE',30,'Supplier Delivery','From Greenlam',datetime('now','-14 days')),
	  (2,'DAMAGE',5,'Broken in Transit','Cracked tiles - claim filed',datetime('now','-10 days')),
	  (6,'SALE',2,'Customer Order','Interior project',datetime('now','-108 days')),
	  (7,'SALE',5,'Customer Order','Kitchen cabinets',datetime('now','-134 days'))`)

	return tx.Commit()
}
