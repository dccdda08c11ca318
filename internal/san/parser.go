package san

// Grammar:
//
//	move       := castle | piece_move | pawn_move
//	castle     := CASTLE_KINGSIDE | CASTLE_QUEENSIDE
//	piece_move := PIECE disambig? CAPTURE? SQUARE check?
//	pawn_move  := (FILE CAPTURE)? SQUARE (PROMOTION PIECE)? check?
//	disambig   := FILE | RANK | SQUARE
//	check      := CHECK | CHECKMATE
//
// A SQUARE directly after the PIECE is the destination unless a CAPTURE
// follows it, in which case it is a disambiguating origin square.

import (
	"github.com/lgbarn/san-english-go/internal/chess"
	"github.com/lgbarn/san-english-go/internal/errors"
)

// Parser builds a Move from a token sequence with one recursive-descent pass.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser over the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete token sequence into a Move.
func Parse(tokens []Token) (Move, error) {
	return NewParser(tokens).Parse()
}

// ParseString tokenizes and parses a move string.
func ParseString(s string) (Move, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse parses the whole sequence, including the final EndOfInput token.
// Nothing is returned on error.
func (p *Parser) Parse() (Move, error) {
	p.pos = 0
	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Kind != EndOfInput {
		return nil, &errors.SyntaxError{Msg: "token sequence not terminated by end of input"}
	}

	move, err := p.parseMove()
	if err != nil {
		return nil, err
	}

	if p.current().Kind != EndOfInput || p.pos != len(p.tokens)-1 {
		return nil, p.errorf("unexpected token after move, expected end of input")
	}
	return move, nil
}

func (p *Parser) current() Token {
	return p.peekAt(0)
}

// peekAt returns the token n places after the cursor. Reads past the end
// return the terminating EndOfInput token.
func (p *Parser) peekAt(n int) Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// errorf reports msg against the token at the cursor.
func (p *Parser) errorf(msg string) error {
	tok := p.current()
	index := p.pos
	if index >= len(p.tokens) {
		index = len(p.tokens) - 1
	}
	return &errors.SyntaxError{
		Msg:    msg,
		Kind:   tok.Kind.String(),
		Lexeme: tok.Lexeme,
		Index:  index,
		Offset: tok.Pos,
	}
}

func (p *Parser) parseMove() (Move, error) {
	switch p.current().Kind {
	case CastleKingside, CastleQueenside:
		return p.parseCastle()
	case Piece:
		return p.parsePieceMove()
	case Square, File:
		return p.parsePawnMove()
	default:
		return nil, p.errorf("unexpected token at start of move")
	}
}

func (p *Parser) parseCastle() (Move, error) {
	move := &CastleMove{Side: Kingside}
	if p.advance().Kind == CastleQueenside {
		move.Side = Queenside
	}
	move.CheckState = p.parseCheck()
	return move, nil
}

func (p *Parser) parsePieceMove() (Move, error) {
	piece, err := p.parsePiece()
	if err != nil {
		return nil, err
	}
	move := &PieceMove{Piece: piece}
	haveDestination := false

	switch p.current().Kind {
	case File:
		move.Disambiguation = Disambiguation{Kind: DisambigFile, Text: p.advance().Lexeme}
	case Rank:
		move.Disambiguation = Disambiguation{Kind: DisambigRank, Text: p.advance().Lexeme}
	case Square:
		// One token beyond the square decides its role.
		if p.peekAt(1).Kind == Capture {
			move.Disambiguation = Disambiguation{Kind: DisambigSquare, Text: p.advance().Lexeme}
			p.advance()
			move.IsCapture = true
			if move.Destination, err = p.parseSquare("expected destination square after capture"); err != nil {
				return nil, err
			}
		} else if move.Destination, err = p.parseSquare("expected square after piece move"); err != nil {
			return nil, err
		}
		haveDestination = true
	}

	if !haveDestination {
		if p.current().Kind == Capture {
			p.advance()
			move.IsCapture = true
		}
		if move.Destination, err = p.parseSquare("expected square after piece move"); err != nil {
			return nil, err
		}
	}

	move.CheckState = p.parseCheck()
	return move, nil
}

func (p *Parser) parsePawnMove() (Move, error) {
	move := &PawnMove{}

	if tok := p.current(); tok.Kind == File {
		if len(tok.Lexeme) != 1 || !chess.IsCol(tok.Lexeme[0]) {
			return nil, p.errorf("malformed file")
		}
		move.OriginFile = chess.Col(tok.Lexeme[0])
		p.advance()

		if p.current().Kind != Capture {
			return nil, p.errorf("expected capture after pawn file")
		}
		p.advance()
		move.IsCapture = true
	}

	var err error
	if move.Destination, err = p.parseSquare("expected destination square"); err != nil {
		return nil, err
	}

	if p.current().Kind == Promotion {
		p.advance()
		if p.current().Kind != Piece {
			return nil, p.errorf("expected promotion piece")
		}
		if p.current().Lexeme == string(chess.King.Letter()) {
			return nil, p.errorf("cannot promote to king")
		}
		if move.Promotion, err = p.parsePiece(); err != nil {
			return nil, err
		}
	}

	move.CheckState = p.parseCheck()
	return move, nil
}

// parsePiece consumes a Piece token and maps its letter.
func (p *Parser) parsePiece() (chess.Piece, error) {
	tok := p.current()
	if tok.Kind != Piece || len(tok.Lexeme) != 1 {
		return chess.NoPiece, p.errorf("expected piece")
	}
	piece, ok := chess.PieceFromLetter(tok.Lexeme[0])
	if !ok {
		return chess.NoPiece, p.errorf("unknown piece letter")
	}
	p.advance()
	return piece, nil
}

// parseSquare consumes a Square token, failing with msg if there is none.
func (p *Parser) parseSquare(msg string) (chess.Square, error) {
	tok := p.current()
	if tok.Kind != Square {
		return "", p.errorf(msg)
	}
	if !chess.IsSquare(tok.Lexeme) {
		return "", p.errorf("malformed square")
	}
	p.advance()
	return chess.Square(tok.Lexeme), nil
}

// parseCheck consumes an optional check or checkmate suffix.
func (p *Parser) parseCheck() CheckState {
	switch p.current().Kind {
	case Check:
		p.advance()
		return GivesCheck
	case Checkmate:
		p.advance()
		return GivesCheckmate
	}
	return NoCheck
}
