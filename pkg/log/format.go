package log

import (
	"fmt"
	"time"
)

// TimestampLayout renders timestamps the same way regardless of locale.
const TimestampLayout = "2006-01-02 15:04:05"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Format returns "<timestamp>: <message>".
func Format(t time.Time, msg string) string {
	return t.Format(TimestampLayout) + ": " + msg
}

// Greeting builds the message logged for a name. An empty name is rendered
// as-is.
func Greeting(name string) string {
	return fmt.Sprintf("Your name is %s!", name)
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}
