package journal

import (
	"database/sql"

	"codeberg.org/mutker/co2mon/internal/errors"
)

const createTablesSQL = `
    CREATE TABLE IF NOT EXISTS notifications (
        id          INTEGER PRIMARY KEY AUTOINCREMENT,
        fired_at    INTEGER NOT NULL,
        co2_ppm     REAL NOT NULL,
        temperature REAL NOT NULL,
        humidity    REAL NOT NULL,
        threshold   REAL NOT NULL,
        delivered   INTEGER NOT NULL CHECK (delivered IN (0, 1))
    );
    CREATE INDEX IF NOT EXISTS idx_notifications_fired_at
        ON notifications (fired_at);`

func initSchema(db *sql.DB) error {
	if _, err := db.Exec(createTablesSQL); err != nil {
		return errors.Wrap(ErrSchemaInitFailed, err)
	}

	return nil
}
