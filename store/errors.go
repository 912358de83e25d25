package store

import "fmt"

func ReducerPanic(action fmt.Stringer, recovered any) ReducerPanicError {
	return ReducerPanicError{Action: action.String(), Recovered: recovered}
}

// ReducerPanicError is returned when the reducer panics. The store keeps its
// previous state.
type ReducerPanicError struct {
	Action    string
	Recovered any
}

func (e ReducerPanicError) Error() string {
	return fmt.Sprintf("reducer panicked on %s: %v", e.Action, e.Recovered)
}
