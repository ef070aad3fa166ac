package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *Error unwraps to exactly one of them.
var (
	ErrUnknownFlag          = errors.New("unknown flag")
	ErrTooFewArguments      = errors.New("too few arguments")
	ErrTooManyArguments     = errors.New("too many arguments")
	ErrInvalidArgumentValue = errors.New("invalid argument value")
)

// Error describes why a group was rejected.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Flag is the flag of the rejected group.
	Flag string
	// Value is the offending argument, set for ErrInvalidArgumentValue.
	Value string
	// Bound is the violated minimum or maximum, set for the count errors.
	Bound int
	// Got is the number of arguments the group had.
	Got int
	// Permitted lists the accepted values, set for ErrInvalidArgumentValue.
	Permitted []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownFlag:
		return fmt.Sprintf("%s is not a valid flag", e.Flag)
	case ErrTooFewArguments:
		return fmt.Sprintf("%s requires at least %d argument(s), got %d", e.Flag, e.Bound, e.Got)
	case ErrTooManyArguments:
		return fmt.Sprintf("%s accepts at most %d argument(s), got %d", e.Flag, e.Bound, e.Got)
	case ErrInvalidArgumentValue:
		return fmt.Sprintf("%q is not a valid argument for %s (valid: %s)", e.Value, e.Flag, strings.Join(e.Permitted, ", "))
	default:
		return fmt.Sprintf("%s: %v", e.Flag, e.Kind)
	}
}

// Unwrap exposes Kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

func unknownFlag(flag string) *Error {
	return &Error{Kind: ErrUnknownFlag, Flag: flag}
}

func tooFewArguments(flag string, lower, got int) *Error {
	return &Error{Kind: ErrTooFewArguments, Flag: flag, Bound: lower, Got: got}
}

func tooManyArguments(flag string, upper, got int) *Error {
	return &Error{Kind: ErrTooManyArguments, Flag: flag, Bound: upper, Got: got}
}

func invalidArgumentValue(value, flag string, permitted []string) *Error {
	return &Error{Kind: ErrInvalidArgumentValue, Flag: flag, Value: value, Permitted: permitted}
}
