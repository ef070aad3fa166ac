package grouper

import (
	"errors"
	"fmt"
)

// ErrNotAFlag is matched by every *NotAFlagError.
var ErrNotAFlag = errors.New("not a flag")

// NotAFlagError is returned when the argument list does not start with a flag.
type NotAFlagError struct {
	Token string
}

// Error implements the error interface.
func (e *NotAFlagError) Error() string {
	return fmt.Sprintf("%q is not a flag: arguments must start with a flag beginning with %q", e.Token, FlagPrefix)
}

// Unwrap lets errors.Is match ErrNotAFlag.
func (e *NotAFlagError) Unwrap() error {
	return ErrNotAFlag
}
