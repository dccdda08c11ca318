package movetext

import (
	"strings"
	"testing"

	"github.com/lgbarn/san-english-go/internal/testutil"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "move numbers and result",
			input: "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0",
			want:  []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"},
		},
		{
			name:  "numbers glued to moves",
			input: "1.d4 Nf6 2.c4 e6 3.Nc3 Bb4 1/2-1/2",
			want:  []string{"d4", "Nf6", "c4", "e6", "Nc3", "Bb4"},
		},
		{
			name:  "black continuation",
			input: "12... Nxe4 13. Qh5+ g6 0-1",
			want:  []string{"Nxe4", "Qh5+", "g6"},
		},
		{
			name: "tags comments and NAGs",
			input: `[Event "Casual"]
[White "A"]
[Black "B"]

1. e4 {best by test} e5 $1 2. f4 ; king's gambit
exf4 *`,
			want: []string{"e4", "e5", "f4", "exf4"},
		},
		{
			name:  "multiline",
			input: "1. e4 e5\n2. Nf3\n",
			want:  []string{"e4", "e5", "Nf3"},
		},
		{
			name:  "empty",
			input: "   \n ",
			want:  []string{},
		},
		{
			name:  "bad moves pass through",
			input: "1. Kx O 2. e4",
			want:  []string{"Kx", "O", "e4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Split(tt.input), tt.want)
		})
	}
}

func TestRead(t *testing.T) {
	moves, err := Read(strings.NewReader("1. e4 c5 2. Nf3 d6 *\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moves, []string{"e4", "c5", "Nf3", "d6"})
}

func TestIsResult(t *testing.T) {
	for _, r := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		testutil.AssertTrue(t, IsResult(r), r)
	}
	for _, r := range []string{"e4", "O-O", "1-1", ""} {
		testutil.AssertFalse(t, IsResult(r), r)
	}
}
