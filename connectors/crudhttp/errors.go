package crudhttp

import "fmt"

type UnknownActionError struct {
	Name string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Name)
}

// DecodeError reports a request body that is not a valid action or argument
// list.
type DecodeError struct {
	Cause error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e DecodeError) Unwrap() error {
	return e.Cause
}
