// Package repl implements the interactive translate loop: each line is
// either a SAN move, translated and printed, or a ":" command.
package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/translate"
)

const helpText = `Enter a move in SAN (e.g. Nf3, exd8=Q#, O-O-O+) to translate it.
Commands:
  :simple    use simple output
  :verbose   use verbose output
  :fields    toggle the field listing after each move
  :help      show this help
  :quit      leave`

// Session is one REPL run.
type Session struct {
	in     LineReader
	out    io.Writer
	logger *slog.Logger

	mode       english.Mode
	showFields bool
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in LineReader, out io.Writer, mode english.Mode, logger *slog.Logger) *Session {
	return &Session{in: in, out: out, mode: mode, logger: logger}
}

// Mode returns the current rendering mode.
func (s *Session) Mode() english.Mode {
	return s.mode
}

// Run reads and handles lines until :quit, end of input, or ctx is done.
// Translation failures are printed and do not end the session.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.in.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if strings.HasPrefix(line, ":") {
			quit, err := s.command(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}

		if err := s.translate(line); err != nil {
			return err
		}
	}
}

func (s *Session) command(line string) (quit bool, err error) {
	switch strings.ToLower(line) {
	case ":simple":
		s.mode = english.Simple
		_, err = fmt.Fprintln(s.out, "mode: simple")
	case ":verbose":
		s.mode = english.Verbose
		_, err = fmt.Fprintln(s.out, "mode: verbose")
	case ":fields":
		s.showFields = !s.showFields
		state := "off"
		if s.showFields {
			state = "on"
		}
		_, err = fmt.Fprintln(s.out, "fields: "+state)
	case ":help", ":h", ":?":
		_, err = fmt.Fprintln(s.out, helpText)
	case ":quit", ":q", ":exit":
		return true, nil
	default:
		_, err = fmt.Fprintf(s.out, "unknown command %q, try :help\n", line)
	}
	return false, err
}

func (s *Session) translate(line string) error {
	r := translate.Move(line, s.mode)
	if r.Err != nil {
		s.logger.Debug("translate failed", "san", r.SAN, "error", r.Err)
		_, err := fmt.Fprintf(s.out, "error: %v\n", r.Err)
		return err
	}

	if _, err := fmt.Fprintln(s.out, r.Text); err != nil {
		return err
	}
	if s.showFields {
		if _, err := fmt.Fprintln(s.out, english.DescribeFields(r.Move)); err != nil {
			return err
		}
	}
	return nil
}
