package delegate

import (
	"github.com/brickingsoft/errors"
)

var (
	// ErrInvalidOperation is matched by the error raised when an empty delegate is called.
	ErrInvalidOperation = errors.Define("invalid operation")
)

// IsInvalidOperation reports whether err comes from calling an empty delegate.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}
