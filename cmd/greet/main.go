// Command greet asks for a name and logs a greeting to the console and to
// Log.txt next to the executable, through one combined callback invocation.
//
// Usage:
//
//	greet [-config greet.yaml] [-log-level debug]
//
// Config file (all keys optional):
//
//	base_dir: /var/log/greet   # default: executable directory
//	file_name: Log.txt
//	journal: greet.mlog        # CBOR journal, read with greet-log
//	aggregate: false           # true: run every sink even after a failure
//	echo_slog: false           # mirror the message to the operational log
//	log_level: warn
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mash-protocol/multicast/pkg/input"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in, err := input.Open("")
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	return newGreeter(cfg, os.Stdout, logger).run(in)
}
