package log

import (
	"io"

	"github.com/google/uuid"
)

// NewRunID returns a fresh identifier for tagging journal entries.
func NewRunID() string {
	return uuid.NewString()
}

// JournalSink appends one CBOR Entry per call to the file at path.
// Like FileSink it opens and closes the file on every call.
// A nil clock uses SystemClock.
func JournalSink(path, runID string, clock Clock) Sink {
	clock = clockOrSystem(clock)
	return func(text string) error {
		entry := Entry{
			Timestamp: clock.Now(),
			RunID:     runID,
			Message:   text,
		}
		return appendTo(path, func(w io.Writer) error {
			return NewEncoder(w).Encode(entry)
		})
	}
}
