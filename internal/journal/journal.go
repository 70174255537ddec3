// Package journal records notification events in a local sqlite database.
// Only alert outcomes are journaled; readings themselves are never
// persisted.
package journal

import (
	"context"
	"time"
)

// Entry is one notification event: what fired, when, and whether the
// email was delivered.
type Entry struct {
	FiredAt     time.Time
	CO2         float64
	Temperature float64
	Humidity    float64
	Threshold   float64
	Delivered   bool
}

// Recorder defines the journal's core interface.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
	Close() error
}
