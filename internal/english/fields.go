package english

import (
	"fmt"
	"strings"

	"github.com/lgbarn/san-english-go/internal/chess"
	"github.com/lgbarn/san-english-go/internal/san"
)

// DescribeFields returns a diagnostic dump of a move's fields, one
// "name = value" line per field under a "Fields:" header.
func DescribeFields(move san.Move) string {
	lines := []string{"Fields:"}
	field := func(name string, value interface{}) {
		lines = append(lines, fmt.Sprintf("  %s = %v", name, value))
	}

	switch m := move.(type) {
	case *san.CastleMove:
		field("side", m.Side)
		field("check", m.CheckState == san.GivesCheck)
		field("checkmate", m.CheckState == san.GivesCheckmate)
	case *san.PieceMove:
		field("piece", translatedPiece(m.Piece))
		field("square", m.Destination)
		field("disambig", m.Disambiguation)
		field("capture", m.IsCapture)
		field("check", m.CheckState == san.GivesCheck)
		field("checkmate", m.CheckState == san.GivesCheckmate)
	case *san.PawnMove:
		field("square", m.Destination)
		if m.HasOriginFile() {
			field("file", string(rune(m.OriginFile)))
		} else {
			field("file", "None")
		}
		field("capture", m.IsCapture)
		if m.IsPromotion() {
			field("promotion", translatedPiece(m.Promotion))
		} else {
			field("promotion", "None")
		}
		field("check", m.CheckState == san.GivesCheck)
		field("checkmate", m.CheckState == san.GivesCheckmate)
	default:
		panic(fmt.Sprintf("english: unhandled move type %T", move))
	}

	return strings.Join(lines, "\n")
}

func translatedPiece(p chess.Piece) string {
	return fmt.Sprintf("%s (translated from %c)", pieceName(p), p.Letter())
}
