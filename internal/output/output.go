// Package output formats translated moves for display: the two-column game
// table, the per-move details report, and JSON.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/san-english-go/internal/english"
	sanerrors "github.com/lgbarn/san-english-go/internal/errors"
	"github.com/lgbarn/san-english-go/internal/san"
	"github.com/lgbarn/san-english-go/internal/translate"
)

// Column layout of the game table per mode.
const (
	simpleWhiteWidth   = 50
	simpleSeparatorPos = 60
	verboseWhiteWidth  = 70
	verboseSeparator   = 80
	moveColumnWidth    = 6
	ruleWidth          = 70
)

func tableWidths(mode english.Mode) (white, separator int) {
	if mode == english.Verbose {
		return verboseWhiteWidth, verboseSeparator
	}
	return simpleWhiteWidth, simpleSeparatorPos
}

// Cell returns the "<san> - <text>" cell for one move, or
// "<san> - Error: <message>" if it failed.
func Cell(r translate.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("%s - Error: %v", r.SAN, cause(r.Err))
	}
	return fmt.Sprintf("%s - %s", r.SAN, r.Text)
}

// cause strips batch context so a table cell shows only the pipeline error.
func cause(err error) error {
	var moveErr *sanerrors.MoveError
	if errors.As(err, &moveErr) && moveErr.Err != nil {
		return moveErr.Err
	}
	return err
}

// WriteTable lays out a game as numbered White | Black rows. A failed move
// occupies its cell like any other and does not end the table.
func WriteTable(w io.Writer, results []translate.Result, mode english.Mode) error {
	whiteWidth, separator := tableWidths(mode)

	lines := []string{
		fmt.Sprintf("Total moves: %d", len(results)),
		fmt.Sprintf("Output mode: %s", mode),
		"",
		fmt.Sprintf("%-*s %-*s | %s", moveColumnWidth, "Move", whiteWidth, "White", "Black"),
		strings.Repeat("-", separator+50),
	}

	moveNumber := 1
	white := ""
	for i, r := range results {
		if i%2 == 0 {
			white = Cell(r)
			continue
		}
		lines = append(lines, fmt.Sprintf("%-*d %-*s | %s", moveColumnWidth, moveNumber, whiteWidth, white, Cell(r)))
		moveNumber++
		white = ""
	}
	if white != "" {
		lines = append(lines, fmt.Sprintf("%-*d %s", moveColumnWidth, moveNumber, white))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// FormatTokens renders a token sequence as "[(KIND, lexeme), ...]".
func FormatTokens(tokens []san.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteDetails writes the stage-by-stage report for a single translated
// move: tokens, AST, fields and both renderings.
func WriteDetails(w io.Writer, r translate.Result) error {
	if r.Err != nil {
		return r.Err
	}

	rule := strings.Repeat("=", ruleWidth)
	thin := strings.Repeat("-", ruleWidth)

	lines := []string{
		rule,
		"Input: " + r.SAN,
		rule,
		"\nStage 1: Lexical Analysis",
		thin,
		"Tokens: " + FormatTokens(r.Tokens),
		"\nStage 2: RDP Parsing",
		thin,
		"AST: " + r.Move.String(),
		"\nStage 3: Semantic Analysis",
		thin,
		english.DescribeFields(r.Move),
		"\nStage 4: Output",
		thin,
		"  Simple:",
		"    " + english.Render(r.Move, english.Simple),
		"",
		"  Verbose:",
		"    " + english.Render(r.Move, english.Verbose),
		"\n" + rule,
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
