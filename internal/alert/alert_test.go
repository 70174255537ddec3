package alert_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/co2mon/internal/alert"
	"codeberg.org/mutker/co2mon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() alert.Config {
	return alert.Config{
		Threshold:  1000,
		Hysteresis: 100,
		Cooldown:   60 * time.Second,
	}
}

func reading(co2 float64) sensor.Reading {
	return sensor.Reading{CO2: co2, Temperature: 22, Humidity: 40}
}

func at(seconds int) time.Time {
	return time.Unix(1700000000, 0).Add(time.Duration(seconds) * time.Second)
}

func TestBelowThresholdNeverNotifies(t *testing.T) {
	m := alert.NewMachine(testConfig())

	for i, co2 := range []float64{400, 850, 999.9} {
		n := m.Evaluate(reading(co2), at(i))
		assert.Nil(t, n, "co2=%v", co2)
		assert.True(t, m.Armed())
		assert.True(t, m.LastNotifiedAt().IsZero())
	}
}

func TestArmedBreachNotifiesOnce(t *testing.T) {
	m := alert.NewMachine(testConfig())

	n := m.Evaluate(reading(1000), at(0)) // threshold is inclusive
	require.NotNil(t, n)
	assert.Equal(t, 1000.0, n.Reading.CO2)
	assert.Equal(t, 1000.0, n.Threshold)
	assert.Equal(t, at(0), n.FiredAt)
	assert.False(t, m.Armed())

	// Still above threshold, within cooldown: suppressed
	assert.Nil(t, m.Evaluate(reading(1500), at(30)))
	assert.Equal(t, at(0), m.LastNotifiedAt())
}

func TestCooldownBoundaryFiresRepeat(t *testing.T) {
	m := alert.NewMachine(testConfig())

	require.NotNil(t, m.Evaluate(reading(1200), at(0)))
	assert.Nil(t, m.Evaluate(reading(1200), at(59)))

	// Exactly at the cooldown boundary a repeat fires and refreshes the clock
	n := m.Evaluate(reading(1200), at(60))
	require.NotNil(t, n)
	assert.Equal(t, at(60), m.LastNotifiedAt())
	assert.False(t, m.Armed(), "repeat notifications keep the machine cooling")
}

func TestDeadZonePreventsRearm(t *testing.T) {
	m := alert.NewMachine(testConfig())
	require.NotNil(t, m.Evaluate(reading(1200), at(0)))

	// 900 <= co2 < 1000: no notification, no re-arm
	for i, co2 := range []float64{900, 950, 999} {
		assert.Nil(t, m.Evaluate(reading(co2), at(10+i)))
		assert.False(t, m.Armed(), "co2=%v must stay in the dead zone", co2)
	}
}

func TestRearmBelowMarginIsSilent(t *testing.T) {
	m := alert.NewMachine(testConfig())
	require.NotNil(t, m.Evaluate(reading(1200), at(0)))

	n := m.Evaluate(reading(899), at(10))
	assert.Nil(t, n, "re-arming must not notify")
	assert.True(t, m.Armed())
	assert.Equal(t, at(0), m.LastNotifiedAt())

	// Re-armed: next breach fires immediately even inside the old cooldown
	require.NotNil(t, m.Evaluate(reading(1001), at(20)))
}

// Regression trace: readings [1200, 1200, 950, 1200] at t=[0, 10, 20, 90]
// must notify at t=0 and t=90 only. t=10 is inside the cooldown, t=20 sits
// in the dead zone (950 >= 900, so no re-arm), and t=90 is past the
// cooldown while still unarmed.
func TestNotificationTrace(t *testing.T) {
	m := alert.NewMachine(testConfig())

	steps := []struct {
		co2      float64
		atSec    int
		notifies bool
	}{
		{1200, 0, true},
		{1200, 10, false},
		{950, 20, false},
		{1200, 90, true},
	}

	for _, step := range steps {
		n := m.Evaluate(reading(step.co2), at(step.atSec))
		if step.notifies {
			assert.NotNil(t, n, "expected notification at t=%d", step.atSec)
		} else {
			assert.Nil(t, n, "unexpected notification at t=%d", step.atSec)
		}
	}
}
