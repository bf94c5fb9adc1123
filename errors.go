package ggpd

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every ggpd package.
var (
	// ErrOutOfRange is returned when an inlet or outlet index is not
	// below the declared arity of the object.
	ErrOutOfRange = errors.New("ggpd: index out of range")

	// ErrUnsupportedOperation is returned when a call is not supported by
	// the active drawing backend.
	ErrUnsupportedOperation = errors.New("ggpd: unsupported operation")

	// ErrResourceExhausted is returned when a bounded resource (such as a
	// canvas tag) would overflow. It always aborts object construction.
	ErrResourceExhausted = errors.New("ggpd: resource exhausted")
)

// IndexKind names the kind of port an IndexError refers to.
type IndexKind string

// Port kinds reported by IndexError.
const (
	KindInlet  IndexKind = "inlet"
	KindOutlet IndexKind = "outlet"
)

// IndexError reports an inlet or outlet index outside [0, Count).
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Kind  IndexKind
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("ggpd: %s index %d out of range [0, %d)", e.Kind, e.Index, e.Count)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// CheckIndex returns an *IndexError if index is not in [0, count).
func CheckIndex(kind IndexKind, index, count int) error {
	if index < 0 || index >= count {
		return &IndexError{Kind: kind, Index: index, Count: count}
	}
	return nil
}

// Unsupported wraps ErrUnsupportedOperation with the backend and operation
// that rejected the call.
func Unsupported(backend, op string) error {
	return fmt.Errorf("%w: %s backend does not support %s", ErrUnsupportedOperation, backend, op)
}
