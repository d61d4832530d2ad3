package callback

import "go.uber.org/multierr"

// Func is a single-argument callback that may fail.
type Func[T any] func(T) error

// Action is a single-argument callback that cannot fail.
type Action[T any] func(T)

// FromAction adapts an Action to a Func that always succeeds.
func FromAction[T any](a Action[T]) Func[T] {
	if a == nil {
		return nil
	}
	return func(v T) error {
		a(v)
		return nil
	}
}

// List is an ordered list of callbacks invoked as one unit.
// The zero value is an empty list.
type List[T any] struct {
	fns []Func[T]
}

// New creates a List holding fns in the given order. nil entries are skipped.
func New[T any](fns ...Func[T]) List[T] {
	return List[T]{}.Append(fns...)
}

// Append returns a new List with fns registered after the existing callbacks.
// The receiver is left unchanged.
func (l List[T]) Append(fns ...Func[T]) List[T] {
	out := make([]Func[T], 0, len(l.fns)+len(fns))
	out = append(out, l.fns...)
	for _, fn := range fns {
		if fn != nil {
			out = append(out, fn)
		}
	}
	return List[T]{fns: out}
}

// Combine returns a new List invoking every callback of each list in turn,
// keeping the order within each list.
func Combine[T any](lists ...List[T]) List[T] {
	n := 0
	for _, l := range lists {
		n += len(l.fns)
	}
	out := make([]Func[T], 0, n)
	for _, l := range lists {
		out = append(out, l.fns...)
	}
	return List[T]{fns: out}
}

// Len returns the number of registered callbacks.
func (l List[T]) Len() int {
	return len(l.fns)
}

// Invoke calls each callback with value in registration order.
// It stops at the first failure and returns it as an *InvokeError;
// callbacks after the failing one are not called.
func (l List[T]) Invoke(value T) error {
	for i, fn := range l.fns {
		if err := fn(value); err != nil {
			return &InvokeError{Index: i, Err: err}
		}
	}
	return nil
}

// InvokeAll calls every callback with value in registration order, even
// after failures. The failures are returned combined, each as an
// *InvokeError, after the last callback has run.
func (l List[T]) InvokeAll(value T) error {
	var errs error
	for i, fn := range l.fns {
		if err := fn(value); err != nil {
			errs = multierr.Append(errs, &InvokeError{Index: i, Err: err})
		}
	}
	return errs
}
