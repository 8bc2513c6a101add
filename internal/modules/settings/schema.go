package settings

import "database/sql"

// SettingsSchema ensures the settings table exists.
// Stored values take precedence over environment defaults, so the journal
// configuration survives restarts without editing .env.
const SettingsSchema = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(SettingsSchema)
	return err
}
