package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/multicast/pkg/log"
)

func TestStatsCounts(t *testing.T) {
	path := createTestJournal(t, sampleEntries())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", stats.TotalEntries)
	}
	if len(stats.Runs) != 2 {
		t.Errorf("Runs = %d, want 2", len(stats.Runs))
	}
	if got := stats.Runs["def67890-0000"].Entries; got != 2 {
		t.Errorf("entries for second run = %d, want 2", got)
	}
	if stats.EmptyNames != 1 {
		t.Errorf("EmptyNames = %d, want 1", stats.EmptyNames)
	}
}

func TestStatsTimeRange(t *testing.T) {
	path := createTestJournal(t, sampleEntries())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.TimeRange.Start.Equal(baseTime) {
		t.Errorf("Start = %v, want %v", stats.TimeRange.Start, baseTime)
	}
	if !stats.TimeRange.End.Equal(baseTime.Add(2 * time.Minute)) {
		t.Errorf("End = %v", stats.TimeRange.End)
	}
}

func TestStatsOutOfOrderEntries(t *testing.T) {
	// A merged journal: run "late" is read first but starts after "early".
	path := createTestJournal(t, []log.Entry{
		{Timestamp: baseTime.Add(5 * time.Minute), RunID: "late0000-0000", Message: "Your name is Bob!"},
		{Timestamp: baseTime.Add(3 * time.Minute), RunID: "early000-0000", Message: "Your name is Alice!"},
		{Timestamp: baseTime, RunID: "early000-0000", Message: "Your name is Carol!"},
		{Timestamp: baseTime.Add(4 * time.Minute), RunID: "late0000-0000", Message: "Your name is Dave!"},
	})

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatal(err)
	}

	early := stats.Runs["early000-0000"]
	if !early.FirstSeen.Equal(baseTime) {
		t.Errorf("early FirstSeen = %v, want %v", early.FirstSeen, baseTime)
	}
	if !early.LastSeen.Equal(baseTime.Add(3 * time.Minute)) {
		t.Errorf("early LastSeen = %v", early.LastSeen)
	}
	late := stats.Runs["late0000-0000"]
	if !late.FirstSeen.Equal(baseTime.Add(4 * time.Minute)) {
		t.Errorf("late FirstSeen = %v", late.FirstSeen)
	}

	var buf bytes.Buffer
	printStats(&buf, stats)
	output := buf.String()
	if strings.Index(output, "[early000]") > strings.Index(output, "[late0000]") {
		t.Errorf("runs not sorted by first seen:\n%s", output)
	}
}

func TestStatsOutput(t *testing.T) {
	path := createTestJournal(t, sampleEntries())

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Total Entries: 3",
		"Runs: 2",
		"[abc12345] 1 entries",
		"[def67890] 2 entries",
		"Empty names: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	// Runs are listed by first appearance.
	if strings.Index(output, "[abc12345]") > strings.Index(output, "[def67890]") {
		t.Error("runs not sorted by first seen")
	}
}
