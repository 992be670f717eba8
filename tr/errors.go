package tr

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrInvalidArgument is reported when an operation receives an argument it
	// cannot use, such as a nil observer. The operation becomes a no-op.
	ErrInvalidArgument = errors.New("tr: invalid argument")

	// ErrDuplicateKey is returned by a Registry when a key is already taken.
	ErrDuplicateKey = errors.New("tr: duplicate key")

	// ErrUnknownKey is returned by Lookup for keys that were never registered.
	ErrUnknownKey = errors.New("tr: unknown key")

	// ErrTypeMismatch is returned when a keyed cell is looked up with the wrong
	// element type.
	ErrTypeMismatch = errors.New("tr: type mismatch")
)

// ComputationError wraps a failure raised by user code while a cell was
// recomputing or applying an update. The cell keeps its previous value.
type ComputationError struct {
	Key string
	Err error
}

func (e *ComputationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("tr: computation failed: %v", e.Err)
	}
	return fmt.Sprintf("tr: computation %q failed: %v", e.Key, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors that a cell swallowed to keep the graph live.
// key is the cell's key, empty for untagged cells.
type ErrorHandler func(key string, err error)

func logErrorHandler(key string, err error) {
	if key == "" {
		key = "<anonymous>"
	}
	log.Printf("tr: %s: %v", key, err)
}

var defaultErrorHandler ErrorHandler = logErrorHandler

// SetErrorHandler replaces the handler used by cells that were not given one
// through WithErrorHandler. Passing nil restores the logging handler.
func SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = logErrorHandler
	}
	defaultErrorHandler = h
}

// recovered turns a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
