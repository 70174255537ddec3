package journal_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/co2mon/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndReadBack(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	rec, err := journal.NewRecorder(journal.Config{DBPath: dbPath})
	require.NoError(t, err)
	defer rec.Close()

	firedAt := time.Unix(1700000000, 0)
	err = rec.Record(context.Background(), &journal.Entry{
		FiredAt:     firedAt,
		CO2:         1250.4,
		Temperature: 23.5,
		Humidity:    48.2,
		Threshold:   1000,
		Delivered:   true,
	})
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var (
		gotFiredAt   int64
		gotCO2       float64
		gotDelivered int
	)
	err = db.QueryRow(
		"SELECT fired_at, co2_ppm, delivered FROM notifications",
	).Scan(&gotFiredAt, &gotCO2, &gotDelivered)
	require.NoError(t, err)

	assert.Equal(t, firedAt.Unix(), gotFiredAt)
	assert.Equal(t, 1250.4, gotCO2)
	assert.Equal(t, 1, gotDelivered)
}

func TestRecordNilEntry(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	rec, err := journal.NewRecorder(journal.Config{DBPath: dbPath})
	require.NoError(t, err)
	defer rec.Close()

	assert.Error(t, rec.Record(context.Background(), nil))
}

func TestNewRecorderRequiresPath(t *testing.T) {
	_, err := journal.NewRecorder(journal.Config{})
	assert.Error(t, err)
}
