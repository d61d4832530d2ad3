package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mash-protocol/multicast/pkg/log"
)

// RunFilter copies matching entries from the journal at path into a new
// journal at output, keeping their original timestamps. It returns the
// number of entries written.
func RunFilter(path, output string, opts FilterOptions) (int, error) {
	filter, err := opts.Build()
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	f, err := os.Create(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output journal: %w", err)
	}
	defer f.Close()

	encoder := log.NewEncoder(f)
	count := 0
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read entry: %w", err)
		}
		if err := encoder.Encode(entry); err != nil {
			return count, fmt.Errorf("failed to write entry: %w", err)
		}
		count++
	}

	return count, f.Close()
}
