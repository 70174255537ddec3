package sensor

import (
	"math"
	"math/rand"
	"time"
)

// SimSource generates plausible indoor-air readings for development and
// benchmarking without sensor hardware. CO2 follows a slow sine wave around
// a baseline so threshold crossings occur within a few minutes of runtime.
type SimSource struct {
	start    time.Time
	baseline float64
	swing    float64
	rng      *rand.Rand
}

func NewSimSource() *SimSource {
	return &SimSource{
		start:    time.Now(),
		baseline: 800,
		swing:    400,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *SimSource) ReadMeasurement() (Reading, error) {
	elapsed := time.Since(s.start).Seconds()
	phase := elapsed / 180 * 2 * math.Pi // full swing every 3 minutes

	return Reading{
		CO2:         s.baseline + s.swing*math.Sin(phase) + s.rng.Float64()*20,
		Temperature: 21.5 + s.rng.Float64(),
		Humidity:    40 + s.rng.Float64()*5,
	}, nil
}

// New returns the Source for the configured driver name. Hardware drivers
// are external collaborators; only the simulator ships with the daemon.
func New(driver string) (Source, error) {
	switch driver {
	case "sim":
		return NewSimSource(), nil
	default:
		return nil, newUnknownDriverError(driver)
	}
}
