package errors

import (
	"errors"
	"fmt"
)

// define error kinds for construction and arithmetic
var (
	ErrFormat           = errors.New("invalid format")
	ErrRange            = errors.New("value out of range")
	ErrUnsignedOverflow = errors.New("negative value for unsigned field")
	ErrDivideByZero     = errors.New("division by zero")

	// ErrInvalidFields is returned for explicit Time fields out of range,
	// it matches both ErrFormat and ErrRange
	ErrInvalidFields = fmt.Errorf("%w: %w", ErrFormat, ErrRange)
)

// IsErrorFormat verifies error
func IsErrorFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsErrorRange verifies error
func IsErrorRange(err error) bool {
	return errors.Is(err, ErrRange)
}

// IsErrorUnsignedOverflow verifies error
func IsErrorUnsignedOverflow(err error) bool {
	return errors.Is(err, ErrUnsignedOverflow)
}

// IsErrorDivideByZero verifies error
func IsErrorDivideByZero(err error) bool {
	return errors.Is(err, ErrDivideByZero)
}

// Rangef wraps ErrRange with details
func Rangef(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrRange, fmt.Sprintf(format, a...))
}

// Formatf wraps ErrFormat with details
func Formatf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, a...))
}
