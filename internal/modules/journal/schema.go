package journal

import "database/sql"

// TradesSchema ensures the trades table exists in the journal database.
// Known payload fields get their own columns; anything else the client sends
// is kept verbatim in extra_json so no data is lost on round trips.
const TradesSchema = `
CREATE TABLE IF NOT EXISTS trades (
    id TEXT PRIMARY KEY,
    position TEXT,
    symbol TEXT,
    lot REAL,
    date_entry TEXT,
    time_entry TEXT,
    date_exit TEXT,
    time_exit TEXT,
    entry REAL,
    sl REAL,
    tp REAL,
    exit REAL,
    exit_reason TEXT,
    extra_json TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_created_at ON trades(created_at);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(TradesSchema)
	return err
}
