package telemetry

import "codeberg.org/mutker/co2mon/internal/errors"

const (
	// Configuration errors
	ErrInvalidConfig = errors.ErrorCode("telemetry_invalid_config")

	// Connection errors
	ErrConnectFailed  = errors.ErrorCode("telemetry_connect_failed")
	ErrConnectTimeout = errors.ErrorCode("telemetry_connect_timeout")
	ErrNotConnected   = errors.ErrorCode("telemetry_not_connected")

	// Publish errors
	ErrPublishFailed    = errors.ErrorCode("telemetry_publish_failed")
	ErrPublishTimeout   = errors.ErrorCode("telemetry_publish_timeout")
	ErrPublishExhausted = errors.ErrorCode("telemetry_publish_exhausted")
)
