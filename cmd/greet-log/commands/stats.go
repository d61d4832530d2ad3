package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mash-protocol/multicast/pkg/log"
)

// Stats holds aggregate statistics about a journal.
type Stats struct {
	TotalEntries int
	Runs         map[string]*RunStats
	EmptyNames   int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// RunStats holds statistics for a single process run.
type RunStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Entries   int
}

// RunStatsCommand analyzes the journal and prints statistics.
func RunStatsCommand(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// CollectStats reads the whole journal at path.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	stats := &Stats{Runs: make(map[string]*RunStats)}

	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read entry: %w", err)
		}

		stats.TotalEntries++

		if stats.TimeRange.Start.IsZero() || entry.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = entry.Timestamp
		}
		if entry.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = entry.Timestamp
		}

		run, ok := stats.Runs[entry.RunID]
		if !ok {
			run = &RunStats{FirstSeen: entry.Timestamp, LastSeen: entry.Timestamp}
			stats.Runs[entry.RunID] = run
		}
		run.Entries++
		if entry.Timestamp.Before(run.FirstSeen) {
			run.FirstSeen = entry.Timestamp
		}
		if entry.Timestamp.After(run.LastSeen) {
			run.LastSeen = entry.Timestamp
		}

		if entry.Message == log.Greeting("") {
			stats.EmptyNames++
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Greeting Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEntries > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Entries: %d\n", stats.TotalEntries)
	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))

	if len(stats.Runs) > 0 {
		type runInfo struct {
			id    string
			stats *RunStats
		}
		runs := make([]runInfo, 0, len(stats.Runs))
		for id, rs := range stats.Runs {
			runs = append(runs, runInfo{id, rs})
		}
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, r := range runs {
			fmt.Fprintf(w, "  [%s] %d entries, first %s\n",
				shortenRunID(r.id), r.stats.Entries, r.stats.FirstSeen.Format(time.RFC3339))
		}
	}

	if stats.EmptyNames > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Empty names: %d\n", stats.EmptyNames)
	}
}
