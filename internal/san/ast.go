package san

import (
	"fmt"

	"github.com/lgbarn/san-english-go/internal/chess"
)

// Move is the interface for all parsed SAN moves. The set of implementations
// is closed: *CastleMove, *PieceMove and *PawnMove.
type Move interface {
	isMove()
	String() string
}

// Side is the side of the board a castle moves to.
type Side int

const (
	Kingside Side = iota
	Queenside
)

// String returns "kingside" or "queenside".
func (s Side) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// CheckState records whether a move gives check. Check and checkmate are
// mutually exclusive.
type CheckState int

const (
	NoCheck CheckState = iota
	GivesCheck
	GivesCheckmate
)

// String returns the string representation of a check state.
func (c CheckState) String() string {
	switch c {
	case GivesCheck:
		return "check"
	case GivesCheckmate:
		return "checkmate"
	default:
		return "none"
	}
}

// DisambigKind identifies which form of disambiguation a piece move uses.
type DisambigKind int

const (
	DisambigNone DisambigKind = iota
	DisambigFile
	DisambigRank
	DisambigSquare
)

// Disambiguation narrows down which piece of a kind is moving.
type Disambiguation struct {
	Kind DisambigKind
	Text string // "b", "1" or "d2"; empty when Kind is DisambigNone
}

// IsSet returns true if the disambiguation is present.
func (d Disambiguation) IsSet() bool {
	return d.Kind != DisambigNone
}

// String returns the disambiguation text, or "None".
func (d Disambiguation) String() string {
	if !d.IsSet() {
		return "None"
	}
	return d.Text
}

// CastleMove represents a castling move.
type CastleMove struct {
	Side       Side
	CheckState CheckState
}

// PieceMove represents a move of a Knight, Bishop, Rook, Queen or King.
type PieceMove struct {
	Piece          chess.Piece
	Destination    chess.Square
	Disambiguation Disambiguation
	IsCapture      bool
	CheckState     CheckState
}

// PawnMove represents a pawn move.
type PawnMove struct {
	OriginFile  chess.Col // 0 when absent
	IsCapture   bool
	Destination chess.Square
	Promotion   chess.Piece // NoPiece when absent
	CheckState  CheckState
}

func (*CastleMove) isMove() {}
func (*PieceMove) isMove()  {}
func (*PawnMove) isMove()   {}

func (m *CastleMove) String() string {
	return fmt.Sprintf("CastleMove(side=%s, check=%s)", m.Side, m.CheckState)
}

func (m *PieceMove) String() string {
	return fmt.Sprintf("PieceMove(piece=%c, square=%s, disambig=%s, capture=%t, check=%s)",
		m.Piece.Letter(), m.Destination, m.Disambiguation, m.IsCapture, m.CheckState)
}

func (m *PawnMove) String() string {
	file := "None"
	if m.HasOriginFile() {
		file = string(rune(m.OriginFile))
	}
	promotion := "None"
	if m.IsPromotion() {
		promotion = string(rune(m.Promotion.Letter()))
	}
	return fmt.Sprintf("PawnMove(square=%s, file=%s, capture=%t, promotion=%s, check=%s)",
		m.Destination, file, m.IsCapture, promotion, m.CheckState)
}

// HasOriginFile returns true if the pawn's starting file was written.
func (m *PawnMove) HasOriginFile() bool {
	return m.OriginFile != 0
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *PawnMove) IsPromotion() bool {
	return m.Promotion != chess.NoPiece
}
