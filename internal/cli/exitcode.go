package cli

import (
	"context"
	"errors"

	"github.com/bjaus/tabfmt"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// usageError marks bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUser
	}
	for _, target := range []error{
		tabfmt.ErrInvalidArgument,
		tabfmt.ErrTypeKind,
		tabfmt.ErrShape,
		tabfmt.ErrUnsupportedFormat,
		tabfmt.ErrInvalidTemplate,
	} {
		if errors.Is(err, target) {
			return ExitUser
		}
	}
	return ExitSystem
}
