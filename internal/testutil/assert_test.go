package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/san-english-go/internal/chess"
	sanerrors "github.com/lgbarn/san-english-go/internal/errors"
	"github.com/lgbarn/san-english-go/internal/san"
)

// Failure paths cannot be observed without a fake *testing.T, so these tests
// cover the passing side of each helper plus the pure helpers.

func TestAssertions_Pass(t *testing.T) {
	AssertEqual(t, []string{"e4", "e5"}, []string{"e4", "e5"})
	AssertEqual(t, chess.Square("f3"), chess.Square("f3"), "square %s", "f3")
	AssertNoError(t, nil)
	AssertError(t, sanerrors.ErrSyntax)
	AssertErrorIs(t, fmt.Errorf("move 3: %w", sanerrors.ErrLex), sanerrors.ErrLex)
	AssertContains(t, "Knight to f3", "f3")
	AssertNotContains(t, "Knight to f3", "captures")
	AssertTrue(t, chess.IsSquare("h8"))
	AssertFalse(t, chess.IsSquare("i9"))
	AssertNil(t, nil)
	AssertNil(t, (*san.PawnMove)(nil))
	AssertNotNil(t, &san.CastleMove{})
}

func TestMustParseMove(t *testing.T) {
	move := MustParseMove(t, "Nf3")
	AssertEqual(t, move, san.Move(&san.PieceMove{Piece: chess.Knight, Destination: "f3"}))

	tokens := MustTokenize(t, "O-O")
	AssertEqual(t, len(tokens), 2)
}

func TestIsNil(t *testing.T) {
	var m map[string]int
	var move san.Move
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil map", m, true},
		{"nil interface value", move, true},
		{"typed nil pointer", (*san.PieceMove)(nil), true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"lexing"}, "lexing"},
		{"single non-string", []interface{}{7}, "7"},
		{"format", []interface{}{"ply %d of %s", 3, "game"}, "ply 3 of game"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
