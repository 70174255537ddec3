package journal

import "codeberg.org/mutker/co2mon/internal/errors"

const (
	ErrInvalidDBPath    = errors.ErrorCode("journal_invalid_db_path")
	ErrInvalidEntry     = errors.ErrorCode("journal_invalid_entry")
	ErrStorageInit      = errors.ErrorCode("journal_storage_init_failed")
	ErrStorageAccess    = errors.ErrorCode("journal_storage_access_failed")
	ErrStorageClose     = errors.ErrorCode("journal_storage_close_failed")
	ErrSchemaInitFailed = errors.ErrorCode("journal_schema_init_failed")
	ErrOperationTimeout = errors.ErrorCode("journal_operation_timeout")
)
