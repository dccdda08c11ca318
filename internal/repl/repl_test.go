package repl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/logging"
)

func runScript(t *testing.T, script string, mode english.Mode) (string, *Session) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(NewDirectReader(strings.NewReader(script)), &out, mode, logging.Discard())
	require.NoError(t, s.Run(context.Background()))
	return out.String(), s
}

func TestDirectReader(t *testing.T) {
	r := NewDirectReader(strings.NewReader("  e4 \n\n   \nNf3"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "e4", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Nf3", line, "blank lines skipped, last line without newline kept")

	_, err = r.ReadLine()
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, r.Close())
}

func TestSession_Moves(t *testing.T) {
	out, _ := runScript(t, "e4\nNbd7\nO-O-O+\n", english.Simple)

	assert.Equal(t, "Pawn to e4\nKnight from b-file to d7\nCastle queenside, check\n", out)
}

func TestSession_ModeSwitch(t *testing.T) {
	out, s := runScript(t, "Qxf7#\n:verbose\nQxf7#\n", english.Simple)

	assert.Equal(t, "Queen captures on f7, checkmate\n"+
		"mode: verbose\n"+
		"queen moves to f7, captures, resulting in checkmate\n", out)
	assert.Equal(t, english.Verbose, s.Mode())
}

func TestSession_ErrorsDoNotStop(t *testing.T) {
	out, _ := runScript(t, "Kx\nO-\nd4\n", english.Simple)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "error: "))
	assert.Contains(t, lines[0], "expected square after piece move")
	assert.Contains(t, lines[1], "malformed castle")
	assert.Equal(t, "Pawn to d4", lines[2])
}

func TestSession_Fields(t *testing.T) {
	out, _ := runScript(t, ":fields\nNf3\n", english.Simple)

	assert.True(t, strings.HasPrefix(out, "fields: on\nKnight to f3\nFields:\n"))
	assert.Contains(t, out, "  piece = Knight (translated from N)")
}

func TestSession_Quit(t *testing.T) {
	out, _ := runScript(t, "e4\n:quit\ne5\n", english.Simple)

	assert.Equal(t, "Pawn to e4\n", out)
}

func TestSession_HelpAndUnknown(t *testing.T) {
	out, _ := runScript(t, ":help\n:board\n", english.Simple)

	assert.Contains(t, out, ":verbose   use verbose output")
	assert.Contains(t, out, `unknown command ":board", try :help`)
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := NewSession(NewDirectReader(strings.NewReader("e4\n")), &out, english.Simple, logging.Discard())
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}
