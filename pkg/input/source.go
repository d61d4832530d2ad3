// Package input provides line sources for reading user input.
//
// A missing line (end of input, or an interrupted prompt) is reported as an
// empty string rather than an error, so callers can format it as-is.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineSource yields one line of text per call.
type LineSource interface {
	// ReadLine returns the next line without its terminator.
	// End of input yields "" and a nil error.
	ReadLine() (string, error)

	Close() error
}

// Open returns a readline source when stdin is a terminal and a plain
// scanner over stdin otherwise (pipes, redirected files).
func Open(prompt string) (LineSource, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewReadline(prompt)
	}
	return NewScanner(os.Stdin), nil
}

// Readline reads lines from an interactive terminal.
type Readline struct {
	rl *readline.Instance
}

// NewReadline creates a terminal line source showing prompt before input.
func NewReadline(prompt string) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, err
	}
	return &Readline{rl: rl}, nil
}

// ReadLine reads one line. Ctrl-D and Ctrl-C count as absent input.
func (r *Readline) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	return absentOnEnd(line, err)
}

// Close restores the terminal.
func (r *Readline) Close() error {
	return r.rl.Close()
}

func absentOnEnd(line string, err error) (string, error) {
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
		return "", nil
	default:
		return "", err
	}
}

// MaxLineSize is the longest line a Scanner accepts. Longer lines fail
// with bufio.ErrTooLong.
const MaxLineSize = 1 << 20

// Scanner reads lines from any io.Reader.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner creates a line source over r accepting lines up to
// MaxLineSize bytes.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxLineSize)
	return &Scanner{s: s}
}

// ReadLine reads one line, dropping a trailing carriage return.
func (s *Scanner) ReadLine() (string, error) {
	if s.s.Scan() {
		return strings.TrimSuffix(s.s.Text(), "\r"), nil
	}
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", nil
}

// Close is a no-op; the underlying reader is owned by the caller.
func (s *Scanner) Close() error { return nil }

var (
	_ LineSource = (*Readline)(nil)
	_ LineSource = (*Scanner)(nil)
)
