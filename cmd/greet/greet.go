package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mash-protocol/multicast/pkg/callback"
	"github.com/mash-protocol/multicast/pkg/input"
	"github.com/mash-protocol/multicast/pkg/log"
)

const prompt = "Please Enter Your Name and Surname"

// greeter reads a name and dispatches the greeting to every sink.
type greeter struct {
	cfg    Config
	stdout io.Writer
	logger *slog.Logger
	clock  log.Clock
	runID  string
}

func newGreeter(cfg Config, stdout io.Writer, logger *slog.Logger) *greeter {
	return &greeter{
		cfg:    cfg,
		stdout: stdout,
		logger: logger,
		clock:  log.SystemClock{},
		runID:  log.NewRunID(),
	}
}

// sinks builds the dispatch list: screen first, then the log file, then
// the optional journal and slog mirrors.
func (g *greeter) sinks() callback.List[string] {
	screen := callback.New(log.ConsoleSink(g.stdout, g.clock))
	file := callback.New(log.FileSink(g.cfg.LogPath(), g.clock))

	sinks := callback.Combine(screen, file)
	if path := g.cfg.JournalPath(); path != "" {
		sinks = sinks.Append(log.JournalSink(path, g.runID, g.clock))
	}
	if g.cfg.EchoSlog {
		sinks = sinks.Append(log.SlogSink(g.logger))
	}
	return sinks
}

// run prompts for a name on stdout, reads it from in and dispatches the
// greeting once.
func (g *greeter) run(in input.LineSource) error {
	if _, err := fmt.Fprintln(g.stdout, prompt); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}

	name, err := in.ReadLine()
	if err != nil {
		return fmt.Errorf("read name: %w", err)
	}

	return g.dispatch(log.Greeting(name))
}

func (g *greeter) dispatch(msg string) error {
	sinks := g.sinks()
	g.logger.Debug("Dispatching message",
		"sinks", sinks.Len(),
		"file", g.cfg.LogPath(),
		"aggregate", g.cfg.Aggregate,
		"run_id", g.runID)

	if g.cfg.Aggregate {
		return sinks.InvokeAll(msg)
	}
	return sinks.Invoke(msg)
}
