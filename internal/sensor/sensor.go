package sensor

import (
	"time"

	"codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/logger"
	"codeberg.org/mutker/co2mon/internal/retry"
)

// Reading is a single measurement produced by the sensor. It is a value
// object: created once per cycle and discarded afterwards.
type Reading struct {
	CO2         float64 // ppm
	Temperature float64 // °C
	Humidity    float64 // %RH
}

// Source exposes the single blocking read operation of the sensor driver.
type Source interface {
	ReadMeasurement() (Reading, error)
}

// Acquisition wraps a Source with a bounded retry policy.
type Acquisition struct {
	source Source
	policy retry.Policy
}

func NewAcquisition(source Source, maxAttempts int, delay time.Duration) *Acquisition {
	return &Acquisition{
		source: source,
		policy: retry.NewPolicy(maxAttempts, delay),
	}
}

// WithSleep replaces the retry pause, for tests.
func (a *Acquisition) WithSleep(sleep func(time.Duration)) *Acquisition {
	a.policy = a.policy.WithSleep(sleep)
	return a
}

// Read returns a validated reading or ErrUnavailable once the retry budget
// is exhausted. Callers must skip publish/alert/display steps on failure
// rather than reuse a stale reading.
func (a *Acquisition) Read() (Reading, error) {
	var reading Reading

	outcome := a.policy.Do(func() error {
		r, err := a.source.ReadMeasurement()
		if err != nil {
			return err
		}
		reading = r
		return nil
	})

	if !outcome.Success {
		logger.Warn().
			Int("attempts", outcome.AttemptsUsed).
			AnErr("last_error", outcome.Err).
			Msg("Sensor read exhausted retries")

		return Reading{}, errors.Wrap(ErrUnavailable, outcome.Err)
	}

	if outcome.AttemptsUsed > 1 {
		logger.Debug().Int("attempts", outcome.AttemptsUsed).Msg("Sensor read recovered after retry")
	}

	return reading, nil
}
