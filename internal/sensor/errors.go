package sensor

import "codeberg.org/mutker/co2mon/internal/errors"

const (
	ErrUnavailable   = errors.ErrorCode("sensor_unavailable")
	ErrUnknownDriver = errors.ErrorCode("sensor_unknown_driver")
)

func newUnknownDriverError(driver string) error {
	return errors.New(ErrUnknownDriver).WithData(driver)
}
