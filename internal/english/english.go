// Package english renders parsed SAN moves as English sentences.
package english

import (
	"fmt"
	"strings"

	"github.com/lgbarn/san-english-go/internal/chess"
	"github.com/lgbarn/san-english-go/internal/errors"
	"github.com/lgbarn/san-english-go/internal/san"
)

// Mode selects how much detail Render produces.
type Mode int

const (
	Simple Mode = iota
	Verbose
)

// String returns "simple" or "verbose".
func (m Mode) String() string {
	if m == Verbose {
		return "verbose"
	}
	return "simple"
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "":
		return Simple, nil
	case "verbose":
		return Verbose, nil
	}
	return Simple, fmt.Errorf("unknown output mode %q (want simple or verbose): %w", s, errors.ErrInvalidConfig)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Render returns the English sentence for a move.
func Render(move san.Move, mode Mode) string {
	switch m := move.(type) {
	case *san.CastleMove:
		if mode == Verbose {
			return castleVerbose(m)
		}
		return castleSimple(m)
	case *san.PieceMove:
		if mode == Verbose {
			return pieceVerbose(m)
		}
		return pieceSimple(m)
	case *san.PawnMove:
		if mode == Verbose {
			return pawnVerbose(m)
		}
		return pawnSimple(m)
	default:
		panic(fmt.Sprintf("english: unhandled move type %T", move))
	}
}

func castleSimple(m *san.CastleMove) string {
	return addCheckSuffix("Castle "+m.Side.String(), m.CheckState)
}

func pieceSimple(m *san.PieceMove) string {
	var sb strings.Builder
	sb.WriteString(pieceName(m.Piece))
	if m.Disambiguation.IsSet() {
		sb.WriteString(" from ")
		sb.WriteString(formatDisambiguation(m.Disambiguation.Text))
	}
	writeTarget(&sb, m.IsCapture, m.Destination)
	return addCheckSuffix(sb.String(), m.CheckState)
}

func pawnSimple(m *san.PawnMove) string {
	var sb strings.Builder
	sb.WriteString("Pawn")
	if m.HasOriginFile() {
		fmt.Fprintf(&sb, " on %c-file", m.OriginFile)
	}
	writeTarget(&sb, m.IsCapture, m.Destination)
	if m.IsPromotion() {
		sb.WriteString(" and promotes to ")
		sb.WriteString(pieceName(m.Promotion))
	}
	return addCheckSuffix(sb.String(), m.CheckState)
}

func writeTarget(sb *strings.Builder, capture bool, dest chess.Square) {
	if capture {
		sb.WriteString(" captures on ")
	} else {
		sb.WriteString(" to ")
	}
	sb.WriteString(string(dest))
}

func castleVerbose(m *san.CastleMove) string {
	parts := []string{"king castles on " + m.Side.String()}
	return joinParts(appendCheckPart(parts, m.CheckState))
}

func pieceVerbose(m *san.PieceMove) string {
	parts := []string{fmt.Sprintf("%s moves to %s", strings.ToLower(pieceName(m.Piece)), m.Destination)}
	if m.Disambiguation.IsSet() {
		parts = append(parts, "from "+formatDisambiguation(m.Disambiguation.Text))
	}
	if m.IsCapture {
		parts = append(parts, "captures")
	}
	return joinParts(appendCheckPart(parts, m.CheckState))
}

func pawnVerbose(m *san.PawnMove) string {
	parts := []string{"pawn moves to " + string(m.Destination)}
	if m.HasOriginFile() {
		parts = append(parts, fmt.Sprintf("from %c-file", m.OriginFile))
	}
	if m.IsCapture {
		parts = append(parts, "captures")
	}
	if m.IsPromotion() {
		parts = append(parts, "promotes to "+strings.ToLower(pieceName(m.Promotion)))
	}
	return joinParts(appendCheckPart(parts, m.CheckState))
}

func joinParts(parts []string) string {
	return strings.Join(parts, ", ")
}

// appendCheckPart adds the verbose check clause; checkmate wins over check.
func appendCheckPart(parts []string, state san.CheckState) []string {
	switch state {
	case san.GivesCheckmate:
		return append(parts, "resulting in checkmate")
	case san.GivesCheck:
		return append(parts, "resulting in check")
	}
	return parts
}

// addCheckSuffix adds the simple check suffix; checkmate wins over check.
func addCheckSuffix(sentence string, state san.CheckState) string {
	switch state {
	case san.GivesCheckmate:
		return sentence + ", checkmate"
	case san.GivesCheck:
		return sentence + ", check"
	}
	return sentence
}

// formatDisambiguation expands a lone file or rank; a square is used as is.
func formatDisambiguation(text string) string {
	if len(text) != 1 {
		return text
	}
	if chess.IsCol(text[0]) {
		return text + "-file"
	}
	return "rank " + text
}

// pieceName resolves a piece to its English name. Values outside the table
// pass through as their letter.
func pieceName(p chess.Piece) string {
	switch p {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King:
		return p.String()
	}
	return string(p.Letter())
}
