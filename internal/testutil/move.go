package testutil

import (
	"testing"

	"github.com/lgbarn/san-english-go/internal/san"
)

// MustTokenize tokenizes a move string.
// It calls t.Fatal if lexing fails.
func MustTokenize(t *testing.T, move string) []san.Token {
	t.Helper()
	tokens, err := san.Tokenize(move)
	if err != nil {
		t.Fatalf("failed to tokenize %q: %v", move, err)
	}
	return tokens
}

// MustParseMove tokenizes and parses a move string.
// It calls t.Fatal if either stage fails. Use this in test setup where
// a parse failure should abort the test.
func MustParseMove(t *testing.T, move string) san.Move {
	t.Helper()
	m, err := san.Parse(MustTokenize(t, move))
	if err != nil {
		t.Fatalf("failed to parse %q: %v", move, err)
	}
	return m
}
