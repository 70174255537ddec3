package notify

import "codeberg.org/mutker/co2mon/internal/errors"

const (
	ErrInvalidConfig = errors.ErrorCode("notify_invalid_config")
	ErrNotConnected  = errors.ErrorCode("notify_not_connected")
	ErrBuildMessage  = errors.ErrorCode("notify_build_message_failed")
	ErrSendFailed    = errors.ErrorCode("notify_send_failed")
)
