package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRecorder(cfg Config) (Recorder, error) {
	errFactory := errors.NewFactory()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Msgf("Initializing alert journal at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal=WAL")
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRecorder{
		db: db,
	}, nil
}

func (r *sqliteRecorder) Record(ctx context.Context, entry *Entry) error {
	errFactory := errors.NewFactory()

	if entry == nil {
		return errFactory.New(ErrInvalidEntry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO notifications (
            fired_at, co2_ppm, temperature, humidity, threshold, delivered
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.FiredAt.Unix(),
		entry.CO2,
		entry.Temperature,
		entry.Humidity,
		entry.Threshold,
		boolToInt(entry.Delivered),
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errors.Wrap(ErrStorageClose, err)
	}
	return nil
}
