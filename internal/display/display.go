// Package display models the local output collaborators: a small character
// display and an attention indicator. Neither produces feedback; commands
// are fire-and-forget.
package display

import (
	"fmt"

	"codeberg.org/mutker/co2mon/internal/sensor"
)

const (
	Columns = 16
	Rows    = 2
)

// Display accepts cursor positioning and text-print commands.
type Display interface {
	Clear()
	SetCursor(col, row int)
	Print(text string)
	Backlight(r, g, b uint8)
}

// Indicator is the audible/visual attention cue (buzzer analog).
type Indicator interface {
	On()
	Off()
}

// FormatReading renders a reading as the two display lines.
func FormatReading(r sensor.Reading) (line1, line2 string) {
	line1 = fmt.Sprintf("CO2: %d ppm", int(r.CO2))
	line2 = fmt.Sprintf("T: %dC   H: %d%%", int(r.Temperature), int(r.Humidity))
	return line1, line2
}

// ShowReading clears the display and writes both reading lines.
func ShowReading(d Display, r sensor.Reading) {
	line1, line2 := FormatReading(r)
	d.Clear()
	d.SetCursor(0, 0)
	d.Print(line1)
	d.SetCursor(0, 1)
	d.Print(line2)
}

// ShowStatus clears the display and writes a single status line.
func ShowStatus(d Display, status string) {
	d.Clear()
	d.SetCursor(0, 0)
	d.Print(status)
}
