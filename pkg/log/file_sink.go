package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultFileName is the log file written next to the executable.
const DefaultFileName = "Log.txt"

// DefaultPath returns DefaultFileName inside the directory of the running
// executable. If that directory cannot be determined the bare file name is
// returned, which resolves against the working directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// FileSink appends each formatted line to the file at path.
// The file is created with permissions 0644 if it doesn't exist. It is
// opened and closed on every call, so no handle is held between calls.
// A nil clock uses SystemClock.
func FileSink(path string, clock Clock) Sink {
	clock = clockOrSystem(clock)
	return func(text string) error {
		return appendTo(path, func(w io.Writer) error {
			_, err := io.WriteString(w, Format(clock.Now(), text)+"\n")
			return err
		})
	}
}

// appendTo opens path for appending, runs write and closes the file.
// The file is closed even when write fails; a close error is only
// reported when write succeeded.
func appendTo(path string, write func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log file: %w", cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write log file %s: %w", path, err)
	}
	return nil
}
