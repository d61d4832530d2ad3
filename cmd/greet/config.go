package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/multicast/pkg/log"
)

// ErrInvalidLogLevel is returned for an unknown -log-level value.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds the greet settings. The zero config plus defaults reproduces
// the plain behavior: Log.txt next to the executable, fail-fast dispatch.
type Config struct {
	// BaseDir holds the log file. Empty means the executable's directory.
	BaseDir string `yaml:"base_dir"`

	// FileName is the plain-text log file inside BaseDir.
	FileName string `yaml:"file_name"`

	// Journal is an optional CBOR journal path, relative to BaseDir unless
	// absolute. Empty disables the journal sink.
	Journal string `yaml:"journal"`

	// Aggregate runs every sink even after a failure.
	Aggregate bool `yaml:"aggregate"`

	// EchoSlog mirrors the message into the operational log.
	EchoSlog bool `yaml:"echo_slog"`

	// LogLevel is the operational log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		FileName: log.DefaultFileName,
		LogLevel: "warn",
	}
}

// LogPath resolves the plain-text log file.
func (c Config) LogPath() string {
	return filepath.Join(c.baseDir(), c.FileName)
}

// JournalPath resolves the journal file, or "" when disabled.
func (c Config) JournalPath() string {
	if c.Journal == "" || filepath.IsAbs(c.Journal) {
		return c.Journal
	}
	return filepath.Join(c.baseDir(), c.Journal)
}

func (c Config) baseDir() string {
	if c.BaseDir != "" {
		return c.BaseDir
	}
	return filepath.Dir(log.DefaultPath())
}

// Validate checks the config for errors.
func (c Config) Validate() error {
	if c.FileName == "" {
		return errors.New("file_name must not be empty")
	}
	if filepath.Base(c.FileName) != c.FileName {
		return fmt.Errorf("file_name %q must not contain a directory", c.FileName)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// loadConfigFile overlays the YAML file at path onto cfg.
// Unknown keys are rejected. An empty or comments-only file changes nothing.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// parseFlags builds the config from defaults, an optional -config file and
// flags. Explicit flags win over the file.
func parseFlags(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("greet", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), `greet - log your name to the console and Log.txt

Usage:
  greet [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.ConfigFile, "config", "", "Configuration file path (YAML)")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ConfigFile != "" {
		if err := loadConfigFile(cfg.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "log-level" {
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, s)
	}
}
