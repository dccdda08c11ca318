package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Prompt is shown before each line in interactive mode.
const Prompt = "san> "

// LineReader supplies the session with input lines. ReadLine returns io.EOF
// once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectReader reads lines from any io.Reader without line editing. It is
// used for piped input and in tests.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader creates a DirectReader over r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next non-blank line with surrounding space removed.
func (dr *DirectReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if err == io.EOF && line == "" {
			return "", io.EOF
		}
	}
	return line, nil
}

// Close does nothing; DirectReader holds no resources.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader reads lines from the terminal with readline editing and
// history.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader initializes readline on stdin. Close must be called
// to restore the terminal.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadLine returns the next non-blank line. Ctrl-C on an empty line ends
// input like Ctrl-D.
func (ir *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				return "", io.EOF
			}
			line = ""
			continue
		}
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}
	return line, nil
}

// Close tears down readline.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
