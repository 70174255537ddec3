package display_test

import (
	"testing"

	"codeberg.org/mutker/co2mon/internal/display"
	"codeberg.org/mutker/co2mon/internal/sensor"
	"github.com/stretchr/testify/assert"
)

func TestFormatReading(t *testing.T) {
	line1, line2 := display.FormatReading(sensor.Reading{
		CO2:         812.7,
		Temperature: 22.4,
		Humidity:    41.9,
	})

	assert.Equal(t, "CO2: 812 ppm", line1)
	assert.Equal(t, "T: 22C   H: 41%", line2)
	assert.LessOrEqual(t, len(line1), display.Columns)
	assert.LessOrEqual(t, len(line2), display.Columns)
}

func TestConsoleClipsToPanelWidth(t *testing.T) {
	c := display.NewConsole()

	c.SetCursor(10, 0)
	c.Print("overflowing text")
	c.SetCursor(0, 5) // out of range, cursor stays put
	c.Print("x")
}
