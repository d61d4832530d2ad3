package log

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for filtering journal entries.
// Empty/nil fields match all entries for that criterion.
type Filter struct {
	// RunID filters by exact run ID match.
	RunID string

	// Contains filters by substring of the message.
	Contains string

	// TimeStart filters entries at or after this time.
	TimeStart *time.Time

	// TimeEnd filters entries before this time.
	TimeEnd *time.Time
}

func (f *Filter) matches(entry Entry) bool {
	if f.RunID != "" && entry.RunID != f.RunID {
		return false
	}
	if f.Contains != "" && !strings.Contains(entry.Message, f.Contains) {
		return false
	}
	if f.TimeStart != nil && entry.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !entry.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader reads entries from a CBOR journal file.
// It streams, so large journals are never loaded whole.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all entries from the journal at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that only returns entries matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next entry that matches the filter.
// Returns io.EOF when no more entries are available.
func (r *Reader) Next() (Entry, error) {
	for {
		var entry Entry
		if err := r.decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				return Entry{}, io.EOF
			}
			return Entry{}, err
		}

		if r.filter.matches(entry) {
			return entry, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
