// Package san provides lexing and parsing of single moves written in
// Standard Algebraic Notation.
package san

import "fmt"

// TokenKind represents the type of a lexical token.
type TokenKind int

const (
	Piece TokenKind = iota
	File
	Rank
	Square
	Capture
	Promotion
	Check
	Checkmate
	CastleKingside
	CastleQueenside
	EndOfInput
)

// tokenKindNames maps token kinds to their string representations.
var tokenKindNames = [...]string{
	Piece:           "PIECE",
	File:            "FILE",
	Rank:            "RANK",
	Square:          "SQUARE",
	Capture:         "CAPTURE",
	Promotion:       "PROMOTION",
	Check:           "CHECK",
	Checkmate:       "CHECKMATE",
	CastleKingside:  "CASTLE_KINGSIDE",
	CastleQueenside: "CASTLE_QUEENSIDE",
	EndOfInput:      "END_OF_INPUT",
}

// String returns the string representation of a token kind.
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its lexeme.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    int // Byte offset of the lexeme in the input
}

// String returns the token as "(KIND, lexeme)".
func (t Token) String() string {
	return fmt.Sprintf("(%s, %s)", t.Kind, t.Lexeme)
}
