// Package alert implements the CO2 alert state machine: a threshold
// trigger throttled by a cooldown window, re-armed through a hysteresis
// margin below the threshold so the state cannot flap at the boundary.
package alert

import (
	"time"

	"codeberg.org/mutker/co2mon/internal/sensor"
)

// Config carries the alerting constants.
type Config struct {
	Threshold  float64       // ppm at or above which a notification fires
	Hysteresis float64       // ppm below Threshold required to re-arm
	Cooldown   time.Duration // minimum spacing between notifications
}

// Notification is the request produced when a notification must be sent.
// It snapshots the reading that triggered it.
type Notification struct {
	Reading   sensor.Reading
	Threshold float64
	FiredAt   time.Time
}

// Machine is the single-writer alert state. armed=true means the next
// threshold breach notifies immediately; after a notification the machine
// cools until either the reading drops below Threshold-Hysteresis (silent
// re-arm) or the cooldown elapses while still above threshold (repeat
// notification, armed stays false).
type Machine struct {
	cfg            Config
	armed          bool
	lastNotifiedAt time.Time
}

func NewMachine(cfg Config) *Machine {
	return &Machine{
		cfg:   cfg,
		armed: true,
	}
}

// Armed reports whether the machine will notify on the next breach
// regardless of cooldown.
func (m *Machine) Armed() bool {
	return m.armed
}

// LastNotifiedAt returns the time of the last notification. The zero time
// means no notification has fired yet; it is never consulted while armed.
func (m *Machine) LastNotifiedAt() time.Time {
	return m.lastNotifiedAt
}

// Evaluate applies one reading to the state machine and returns a
// Notification exactly when one must be sent. The state transitions even
// if the caller's send subsequently fails: the cooldown window is the next
// opportunity, not an immediate retry.
func (m *Machine) Evaluate(reading sensor.Reading, now time.Time) *Notification {
	if reading.CO2 >= m.cfg.Threshold {
		if m.armed || now.Sub(m.lastNotifiedAt) >= m.cfg.Cooldown {
			m.armed = false
			m.lastNotifiedAt = now

			return &Notification{
				Reading:   reading,
				Threshold: m.cfg.Threshold,
				FiredAt:   now,
			}
		}

		return nil
	}

	// Below threshold: re-arm only past the dead zone.
	if reading.CO2 < m.cfg.Threshold-m.cfg.Hysteresis {
		m.armed = true
	}

	return nil
}
