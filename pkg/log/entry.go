package log

import "time"

// Entry is one journal record.
// CBOR encoding uses integer keys for compactness.
type Entry struct {
	// Timestamp when the message was dispatched (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the process run that wrote the entry (UUID).
	RunID string `cbor:"2,keyasint"`

	// Message is the unformatted message text.
	Message string `cbor:"3,keyasint"`
}

// Line returns the entry rendered the way console and file sinks write it.
func (e Entry) Line() string {
	return Format(e.Timestamp, e.Message)
}
