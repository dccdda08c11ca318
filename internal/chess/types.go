// Package chess provides the board coordinate and piece types shared by the
// SAN pipeline.
package chess

// Piece represents a non-pawn chess piece that can appear in SAN.
type Piece int

const (
	NoPiece Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [...]string{
	NoPiece: "None",
	Knight:  "Knight",
	Bishop:  "Bishop",
	Rook:    "Rook",
	Queen:   "Queen",
	King:    "King",
}

var pieceLetters = [...]byte{
	NoPiece: ' ',
	Knight:  'N',
	Bishop:  'B',
	Rook:    'R',
	Queen:   'Q',
	King:    'K',
}

// String returns the English name of a piece.
func (p Piece) String() string {
	if p >= 0 && int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return "Unknown"
}

// Letter returns the single letter SAN symbol of a piece (uppercase).
func (p Piece) Letter() byte {
	if p >= 0 && int(p) < len(pieceLetters) {
		return pieceLetters[p]
	}
	return '?'
}

// PieceFromLetter maps a SAN piece letter to its Piece.
// Only the uppercase English letters K, Q, R, B and N are recognised.
func PieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return NoPiece, false
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// IsCol returns true if c is a valid column (file) character.
func IsCol(c byte) bool {
	return c >= FirstCol && c <= LastCol
}

// IsRank returns true if c is a valid rank character.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// Square is a board square in its two character form, e.g. "e4".
type Square string

// IsSquare reports whether s is exactly a file letter followed by a rank digit.
func IsSquare(s string) bool {
	return len(s) == 2 && IsCol(s[0]) && IsRank(s[1])
}

// Col returns the file of the square.
func (s Square) Col() Col {
	if len(s) != 2 {
		return 0
	}
	return Col(s[0])
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	if len(s) != 2 {
		return 0
	}
	return Rank(s[1])
}

// String returns the square text.
func (s Square) String() string {
	return string(s)
}
