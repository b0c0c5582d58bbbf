package common

import "github.com/cockroachdb/errors"

var (
	ErrDuplicate      = errors.New("duplicate transaction")
	ErrNotFound       = errors.New("record not found")
	ErrConflict       = errors.New("record was modified concurrently")
	ErrSyncInProgress = errors.New("a sync pass is already running for this configuration")
	ErrSyncDisabled   = errors.New("sync is disabled for this configuration")
	ErrNotConfigured  = errors.New("banking configuration is missing")
)

// ValidationError is returned when an operator mutation is rejected.
// The reason is safe to show to the operator as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
