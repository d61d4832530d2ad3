package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/mash-protocol/multicast/pkg/callback"
	"github.com/mash-protocol/multicast/pkg/input"
	"github.com/mash-protocol/multicast/pkg/log"
)

type stubLineSource struct{ mock.Mock }

func (s *stubLineSource) ReadLine() (string, error) {
	args := s.Called()
	return args.String(0), args.Error(1)
}

func (s *stubLineSource) Close() error {
	return s.Called().Error(0)
}

var _ input.LineSource = (*stubLineSource)(nil)

func linesOf(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func testGreeter(cfg Config, stdout io.Writer) *greeter {
	g := newGreeter(cfg, stdout, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.clock = log.FixedClock(time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC))
	return g
}

func tempConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.BaseDir = t.TempDir()
	return cfg
}

func TestRunLogsToConsoleAndFile(t *testing.T) {
	cfg := tempConfig(t)
	require.NoError(t, os.WriteFile(cfg.LogPath(), []byte("old entry\n"), 0644))

	src := &stubLineSource{}
	src.On("ReadLine").Return("Alice", nil).Once()

	var stdout bytes.Buffer
	require.NoError(t, testGreeter(cfg, &stdout).run(src))
	src.AssertExpectations(t)

	out := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, out, 2)
	assert.Equal(t, prompt, out[0])
	assert.True(t, strings.HasSuffix(out[1], ": Your name is Alice!"), "stdout line %q", out[1])

	lines := linesOf(t, cfg.LogPath())
	require.Len(t, lines, 2)
	assert.Equal(t, "old entry", lines[0])
	assert.Equal(t, "2026-10-15 08:30:00: Your name is Alice!", lines[1])
}

func TestDispatchTwiceAppendsInOrder(t *testing.T) {
	cfg := tempConfig(t)
	g := testGreeter(cfg, io.Discard)

	require.NoError(t, g.dispatch("A"))
	require.NoError(t, g.dispatch("B"))

	lines := linesOf(t, cfg.LogPath())
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ": A"))
	assert.True(t, strings.HasSuffix(lines[1], ": B"))
}

func TestRunAbsentInputRendersEmpty(t *testing.T) {
	cfg := tempConfig(t)

	var stdout bytes.Buffer
	require.NoError(t, testGreeter(cfg, &stdout).run(input.NewScanner(strings.NewReader(""))))

	assert.Contains(t, stdout.String(), ": Your name is !\n")
	assert.Equal(t, []string{"2026-10-15 08:30:00: Your name is !"}, linesOf(t, cfg.LogPath()))
}

func TestRunReadErrorStopsBeforeDispatch(t *testing.T) {
	cfg := tempConfig(t)
	errTTY := errors.New("tty lost")

	src := &stubLineSource{}
	src.On("ReadLine").Return("", errTTY)

	var stdout bytes.Buffer
	err := testGreeter(cfg, &stdout).run(src)
	assert.ErrorIs(t, err, errTTY)

	assert.Equal(t, prompt+"\n", stdout.String())
	_, statErr := os.Stat(cfg.LogPath())
	assert.True(t, os.IsNotExist(statErr), "log file should not be created")
}

func TestDispatchFileFailureIsFailFast(t *testing.T) {
	cfg := tempConfig(t)
	cfg.BaseDir = filepath.Join(cfg.BaseDir, "missing")
	cfg.Journal = filepath.Join(t.TempDir(), "run.mlog")

	var stdout bytes.Buffer
	err := testGreeter(cfg, &stdout).dispatch("Your name is Alice!")
	require.Error(t, err)

	var invErr *callback.InvokeError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 1, invErr.Index, "file sink is registered second")

	// Console ran before the failure, the journal after it did not.
	assert.Contains(t, stdout.String(), ": Your name is Alice!")
	_, statErr := os.Stat(cfg.Journal)
	assert.True(t, os.IsNotExist(statErr), "journal sink should have been skipped")
}

func TestDispatchAggregateRunsAllSinks(t *testing.T) {
	cfg := tempConfig(t)
	cfg.BaseDir = filepath.Join(cfg.BaseDir, "missing")
	cfg.Journal = filepath.Join(t.TempDir(), "run.mlog")
	cfg.Aggregate = true

	var stdout bytes.Buffer
	err := testGreeter(cfg, &stdout).dispatch("Your name is Alice!")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)

	assert.Contains(t, stdout.String(), ": Your name is Alice!")

	r, err := log.NewReader(cfg.Journal)
	require.NoError(t, err)
	defer r.Close()
	entry, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Your name is Alice!", entry.Message)
}

func TestDispatchJournalAndSlogEcho(t *testing.T) {
	cfg := tempConfig(t)
	cfg.Journal = "greet.mlog"
	cfg.EchoSlog = true

	var opLog bytes.Buffer
	g := testGreeter(cfg, io.Discard)
	g.logger = slog.New(slog.NewTextHandler(&opLog, nil))

	sinks := g.sinks()
	assert.Equal(t, 4, sinks.Len())
	require.NoError(t, g.dispatch("Your name is Bob!"))

	assert.Contains(t, opLog.String(), `text="Your name is Bob!"`)

	r, err := log.NewReader(filepath.Join(cfg.BaseDir, "greet.mlog"))
	require.NoError(t, err)
	defer r.Close()
	entry, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, g.runID, entry.RunID)
	assert.Equal(t, "Your name is Bob!", entry.Message)
}

func TestDefaultSinksAreConsoleAndFile(t *testing.T) {
	g := testGreeter(tempConfig(t), io.Discard)
	assert.Equal(t, 2, g.sinks().Len())
}
