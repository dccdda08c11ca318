package san

import (
	"strings"

	"github.com/lgbarn/san-english-go/internal/chess"
	"github.com/lgbarn/san-english-go/internal/errors"
)

const (
	kingsideLexeme  = "O-O"
	queensideLexeme = "O-O-O"
)

// Lexer tokenizes a single SAN move.
type Lexer struct {
	input  string
	pos    int
	tokens []Token
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans a move string and returns its tokens, terminated by exactly
// one EndOfInput token. Characters outside the SAN alphabet are skipped.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize scans the whole input. No tokens are returned on error.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.pos = 0
	l.tokens = l.tokens[:0]

	for l.pos < len(l.input) {
		if err := l.scan(); err != nil {
			l.tokens = nil
			return nil, err
		}
	}
	l.emit(EndOfInput, "", len(l.input))

	tokens := make([]Token, len(l.tokens))
	copy(tokens, l.tokens)
	return tokens, nil
}

// scan consumes the token (or skipped character) at the cursor.
func (l *Lexer) scan() error {
	ch := l.input[l.pos]
	start := l.pos

	switch {
	case ch == 'O':
		return l.scanCastle()
	case isPieceLetter(ch):
		l.emit(Piece, string(ch), start)
		l.pos++
	case chess.IsCol(ch):
		if chess.IsRank(l.peek()) {
			l.emit(Square, l.input[start:start+2], start)
			l.pos += 2
		} else {
			l.emit(File, string(ch), start)
			l.pos++
		}
	case chess.IsRank(ch):
		l.emit(Rank, string(ch), start)
		l.pos++
	case ch == 'x':
		l.emit(Capture, "x", start)
		l.pos++
	case ch == '=':
		l.emit(Promotion, "=", start)
		l.pos++
	case ch == '+':
		l.emit(Check, "+", start)
		l.pos++
	case ch == '#':
		l.emit(Checkmate, "#", start)
		l.pos++
	default:
		// Whitespace and anything outside the alphabet produce no token.
		l.pos++
	}
	return nil
}

// scanCastle matches O-O-O before O-O.
func (l *Lexer) scanCastle() error {
	rest := l.input[l.pos:]
	switch {
	case strings.HasPrefix(rest, queensideLexeme):
		l.emit(CastleQueenside, queensideLexeme, l.pos)
		l.pos += len(queensideLexeme)
	case strings.HasPrefix(rest, kingsideLexeme):
		l.emit(CastleKingside, kingsideLexeme, l.pos)
		l.pos += len(kingsideLexeme)
	default:
		return &errors.LexError{
			Offset: l.pos,
			Lexeme: castleRun(rest),
			Msg:    "malformed castle, expected O-O or O-O-O",
		}
	}
	return nil
}

// castleRun returns the leading run of 'O' and '-' characters, which is the
// text a user intended as a castle.
func castleRun(s string) string {
	end := 0
	for end < len(s) && end < len(queensideLexeme) && (s[end] == 'O' || s[end] == '-') {
		end++
	}
	return s[:end]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) emit(kind TokenKind, lexeme string, pos int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Lexeme: lexeme, Pos: pos})
}

func isPieceLetter(c byte) bool {
	_, ok := chess.PieceFromLetter(c)
	return ok
}
