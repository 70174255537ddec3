package display

import (
	"strings"
	"sync"

	"codeberg.org/mutker/co2mon/internal/logger"
)

// Console renders the character display as log lines. It keeps a
// Rows x Columns buffer so partial prints compose the same way they would
// on the hardware panel.
type Console struct {
	mu  sync.Mutex
	buf [Rows][Columns]byte
	col int
	row int
}

func NewConsole() *Console {
	c := &Console{}
	c.reset()
	return c
}

func (c *Console) reset() {
	for r := range c.buf {
		for col := range c.buf[r] {
			c.buf[r][col] = ' '
		}
	}
	c.col, c.row = 0, 0
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Console) SetCursor(col, row int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if col >= 0 && col < Columns {
		c.col = col
	}
	if row >= 0 && row < Rows {
		c.row = row
	}
}

func (c *Console) Print(text string) {
	c.mu.Lock()

	for i := 0; i < len(text) && c.col+i < Columns; i++ {
		c.buf[c.row][c.col+i] = text[i]
	}

	line1 := strings.TrimRight(string(c.buf[0][:]), " ")
	line2 := strings.TrimRight(string(c.buf[1][:]), " ")
	c.mu.Unlock()

	logger.Info().
		Str("line1", line1).
		Str("line2", line2).
		Msg("Display")
}

func (c *Console) Backlight(r, g, b uint8) {
	logger.Debug().
		Uint8("r", r).
		Uint8("g", g).
		Uint8("b", b).
		Msg("Display backlight")
}

// ConsoleIndicator logs indicator state changes instead of driving a pin.
type ConsoleIndicator struct {
	mu sync.Mutex
	on bool
}

func NewConsoleIndicator() *ConsoleIndicator {
	return &ConsoleIndicator{}
}

func (i *ConsoleIndicator) On() {
	i.mu.Lock()
	changed := !i.on
	i.on = true
	i.mu.Unlock()

	if changed {
		logger.Info().Msg("Indicator on")
	}
}

func (i *ConsoleIndicator) Off() {
	i.mu.Lock()
	changed := i.on
	i.on = false
	i.mu.Unlock()

	if changed {
		logger.Info().Msg("Indicator off")
	}
}
