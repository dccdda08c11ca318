package output

import (
	"io"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/translate"
)

// GameWriter is the interface for writing translated games to output.
// Different implementations handle different output formats (table, JSON).
type GameWriter interface {
	// WriteGame writes a single translated game to the output.
	WriteGame(results []translate.Result) error

	// Close releases any resources. Batch writers write pending output here.
	Close() error
}

// TableWriter writes games as the two-column White | Black table.
type TableWriter struct {
	w    io.Writer
	mode english.Mode
}

// NewTableWriter creates a new table writer.
func NewTableWriter(w io.Writer, mode english.Mode) *TableWriter {
	return &TableWriter{w: w, mode: mode}
}

// WriteGame writes a game table.
func (tw *TableWriter) WriteGame(results []translate.Result) error {
	return WriteTable(tw.w, results, tw.mode)
}

// Close closes the table writer (no-op as it writes immediately).
func (tw *TableWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close.
type JSONWriter struct {
	w     io.Writer
	mode  english.Mode
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, mode english.Mode) *JSONWriter {
	return &JSONWriter{w: w, mode: mode}
}

// WriteGame buffers a game for output.
func (jw *JSONWriter) WriteGame(results []translate.Result) error {
	jw.games = append(jw.games, GameToJSON(results, jw.mode))
	return nil
}

// Close writes all buffered games. A single game is written as an object,
// several as an array.
func (jw *JSONWriter) Close() error {
	if len(jw.games) == 0 {
		return nil
	}
	defer func() { jw.games = nil }()
	if len(jw.games) == 1 {
		return encodeJSON(jw.w, jw.games[0])
	}
	return encodeJSON(jw.w, jw.games)
}

// NewGameWriter returns the writer for the requested format.
func NewGameWriter(w io.Writer, mode english.Mode, asJSON bool) GameWriter {
	if asJSON {
		return NewJSONWriter(w, mode)
	}
	return NewTableWriter(w, mode)
}
