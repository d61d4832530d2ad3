// Package callback provides an ordered, immutable list of single-argument
// callbacks that can be combined and invoked as one unit.
//
// # Basic Usage
//
//	screen := callback.New(log.ConsoleSink(os.Stdout, log.SystemClock{}))
//	file := callback.New(log.FileSink(path, log.SystemClock{}))
//
//	both := callback.Combine(screen, file)
//	if err := both.Invoke("Your name is Alice!"); err != nil {
//	    // the first failing callback stopped the chain
//	}
//
// # Failure Modes
//
// Invoke is fail-fast: the first callback that returns an error stops the
// chain and the error is returned wrapped in an *InvokeError. InvokeAll runs
// every callback and returns all failures combined; use multierr.Errors to
// split them again.
//
// Lists never change after construction. Append and Combine return new
// lists, so a published list is safe to invoke from several goroutines.
package callback
