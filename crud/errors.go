package crud

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingTypes        = errors.New("valid types are required")
	ErrMissingConfig       = errors.New("a declaration map is required to setup types and creators")
	ErrInvalidInitialState = errors.New("initial state is required")
	ErrInvalidHandlers     = errors.New("handlers must be a non-nil map")
	ErrMissingType         = errors.New("no action type for default action")
	ErrInvalidSlice        = errors.New("invalid state slice")
)

// UndefinedHandlerError is returned when a handler is registered under a type
// that was never defined. It usually means an action type constant was used
// before it was assigned.
type UndefinedHandlerError struct {
	Key ActionType
}

func (e UndefinedHandlerError) Error() string {
	return fmt.Sprintf("handlers cannot have an undefined key (%q)", string(e.Key))
}

func (e UndefinedHandlerError) Unwrap() error {
	return ErrInvalidHandlers
}

func UndefinedHandler(key ActionType) UndefinedHandlerError {
	return UndefinedHandlerError{Key: key}
}
