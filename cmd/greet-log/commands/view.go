// Package commands implements the greet-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/mash-protocol/multicast/pkg/log"
)

// FilterOptions holds the raw filter flags shared by view and filter.
type FilterOptions struct {
	RunID     string
	Contains  string
	TimeStart string
	TimeEnd   string
}

// Build converts the options into a log.Filter, parsing RFC3339 times.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		RunID:    o.RunID,
		Contains: o.Contains,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// RunView prints matching journal entries in human-readable form.
func RunView(path string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Build()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	for {
		entry, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		formatEntry(w, entry)
	}
}

// formatEntry writes "[run] <timestamp>: <message>".
func formatEntry(w io.Writer, entry log.Entry) {
	fmt.Fprintf(w, "[run:%s] %s\n", shortenRunID(entry.RunID), entry.Line())
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
