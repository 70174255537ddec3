package sensor_test

import (
	"errors"
	"testing"
	"time"

	apperrors "codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakySource struct {
	failures int
	calls    int
	reading  sensor.Reading
}

func (s *flakySource) ReadMeasurement() (sensor.Reading, error) {
	s.calls++
	if s.calls <= s.failures {
		return sensor.Reading{}, errors.New("i2c timeout")
	}
	return s.reading, nil
}

func TestReadRecoversWithinBudget(t *testing.T) {
	src := &flakySource{
		failures: 2,
		reading:  sensor.Reading{CO2: 850, Temperature: 22.1, Humidity: 41},
	}
	acq := sensor.NewAcquisition(src, 3, 500*time.Millisecond).WithSleep(func(time.Duration) {})

	reading, err := acq.Read()

	require.NoError(t, err)
	assert.Equal(t, src.reading, reading)
	assert.Equal(t, 3, src.calls)
}

func TestReadExhaustionReturnsUnavailable(t *testing.T) {
	src := &flakySource{failures: 10}
	acq := sensor.NewAcquisition(src, 3, 500*time.Millisecond).WithSleep(func(time.Duration) {})

	_, err := acq.Read()

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, sensor.ErrUnavailable))
	assert.Equal(t, 3, src.calls)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := sensor.New("scd41")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, sensor.ErrUnknownDriver))
}

func TestSimSourceProducesPlausibleReadings(t *testing.T) {
	src := sensor.NewSimSource()

	reading, err := src.ReadMeasurement()

	require.NoError(t, err)
	assert.InDelta(t, 800, reading.CO2, 450)
	assert.InDelta(t, 22, reading.Temperature, 2)
	assert.InDelta(t, 42.5, reading.Humidity, 5)
}
