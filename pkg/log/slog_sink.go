package log

import (
	"context"
	"log/slog"
)

// SlogSink mirrors each message to an slog.Logger at Info level.
// Useful for development when messages should also show up in the
// operational log. A nil logger uses slog.Default(). It never fails.
func SlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return func(text string) error {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "message", slog.String("text", text))
		return nil
	}
}
