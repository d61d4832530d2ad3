package log

import (
	"fmt"
	"io"
)

// ConsoleSink writes each formatted line to w.
// A nil clock uses SystemClock.
func ConsoleSink(w io.Writer, clock Clock) Sink {
	clock = clockOrSystem(clock)
	return func(text string) error {
		if _, err := fmt.Fprintln(w, Format(clock.Now(), text)); err != nil {
			return fmt.Errorf("write console line: %w", err)
		}
		return nil
	}
}
