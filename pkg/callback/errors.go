package callback

import "fmt"

// InvokeError reports which callback in a List failed.
type InvokeError struct {
	// Index is the 0-based registration position of the failing callback.
	Index int
	Err   error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("callback %d: %v", e.Index, e.Err)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}
