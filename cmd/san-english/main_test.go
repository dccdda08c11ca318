package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/san-english-go/internal/output"
)

// run executes the root command with args and returns stdout, stderr and
// the command error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "san-english version "+programVersion+"\n", out)
}

func TestTranslate(t *testing.T) {
	out, _, err := run(t, "", "translate", "Nf3", "exd8=Q#", "O-O-O+")
	require.NoError(t, err)
	assert.Equal(t, "Knight to f3\n"+
		"Pawn on e-file captures on d8 and promotes to Queen, checkmate\n"+
		"Castle queenside, check\n", out)
}

func TestTranslate_Verbose(t *testing.T) {
	out, _, err := run(t, "", "translate", "-m", "verbose", "R1a3")
	require.NoError(t, err)
	assert.Equal(t, "rook moves to a3, from rank 1\n", out)
}

func TestTranslate_Failure(t *testing.T) {
	out, errOut, err := run(t, "", "translate", "e4", "Kx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 moves failed")
	assert.Equal(t, "Pawn to e4\n", out)
	assert.Contains(t, errOut, "Kx: ")
	assert.Contains(t, errOut, "expected square after piece move")
}

func TestTranslate_BadMode(t *testing.T) {
	_, _, err := run(t, "", "translate", "--mode", "loud", "e4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output mode")
}

func TestTranslate_Fields(t *testing.T) {
	out, _, err := run(t, "", "translate", "--fields", "O-O")
	require.NoError(t, err)
	assert.Equal(t, "Castle kingside\nFields:\n  side = kingside\n  check = false\n  checkmate = false\n", out)
}

func TestTranslate_Details(t *testing.T) {
	out, _, err := run(t, "", "translate", "--details", "Nf3")
	require.NoError(t, err)
	assert.Contains(t, out, "Tokens: [(PIECE, N), (SQUARE, f3), (END_OF_INPUT, )]")
	assert.Contains(t, out, "Stage 4: Output")
}

func TestTranslate_JSON(t *testing.T) {
	out, _, err := run(t, "", "translate", "--json", "e4", "Kx")
	require.Error(t, err)

	var moves []output.JSONMove
	require.NoError(t, json.Unmarshal([]byte(out), &moves))
	require.Len(t, moves, 2)
	assert.Equal(t, "Pawn to e4", moves[0].Text)
	assert.NotEmpty(t, moves[1].Error)
}

func TestTranslate_ConfigMode(t *testing.T) {
	cfgPath := writeFile(t, "san.toml", "mode = \"verbose\"\n")

	out, _, err := run(t, "", "--config", cfgPath, "translate", "e4")
	require.NoError(t, err)
	assert.Equal(t, "pawn moves to e4\n", out)

	out, _, err = run(t, "", "--config", cfgPath, "translate", "-m", "simple", "e4")
	require.NoError(t, err)
	assert.Equal(t, "Pawn to e4\n", out, "flag overrides config")
}

func TestBadConfig(t *testing.T) {
	cfgPath := writeFile(t, "san.toml", "workers = 0\n")

	_, _, err := run(t, "", "--config", cfgPath, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be at least 1")
}

func TestGame_Stdin(t *testing.T) {
	out, _, err := run(t, "1. e4 e5 2. Nf3 1-0\n", "game", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Total moves: 3\n")
	assert.Contains(t, out, "1      e4 - Pawn to e4")
	assert.Contains(t, out, "| e5 - Pawn to e5\n")
	assert.Contains(t, out, "2      Nf3 - Knight to f3\n")
}

func TestGame_FileJSON(t *testing.T) {
	path := writeFile(t, "game.pgn", "[Event \"Test\"]\n\n1. d4 Kx 2. c4 *\n")

	out, _, err := run(t, "", "game", "--json", "-m", "verbose", path)
	require.NoError(t, err)

	var game output.JSONGame
	require.NoError(t, json.Unmarshal([]byte(out), &game))
	assert.Equal(t, "verbose", game.Mode)
	require.Len(t, game.Moves, 3)
	assert.Equal(t, "pawn moves to c4", game.Moves[2].Text)
	assert.Contains(t, game.Moves[1].Error, "expected square after piece move")
}

func TestGame_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "game", filepath.Join(t.TempDir(), "missing.pgn"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open movetext")
}

func TestGame_BadWorkers(t *testing.T) {
	_, _, err := run(t, "e4", "game", "--workers", "0")
	require.Error(t, err)
}

func TestRepl_Direct(t *testing.T) {
	out, _, err := run(t, "e4\n:verbose\nNf3\n:quit\n", "repl", "--direct")
	require.NoError(t, err)
	assert.Equal(t, "Pawn to e4\nmode: verbose\nknight moves to f3\n", out)
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "san.log")

	_, _, err := run(t, "", "--log-level", "debug", "--log-file", logPath, "translate", "Kx")
	require.Error(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"translate failed"`)
}
