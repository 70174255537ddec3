package telemetry

import (
	"fmt"

	"codeberg.org/mutker/co2mon/internal/sensor"
)

// EncodePayload renders a reading in the channel's key=value format.
// Fields use fixed two-decimal formatting; Go's default float-to-string
// rule would drop trailing zeros, which the endpoint's parser does not
// expect.
func EncodePayload(r sensor.Reading) string {
	return fmt.Sprintf("field1=%.2f&field2=%.2f&field3=%.2f&status=MQTTPUBLISH",
		r.CO2, r.Temperature, r.Humidity)
}
