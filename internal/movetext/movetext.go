// Package movetext strips PGN game text down to a plain list of SAN moves.
//
// Tag pairs, brace and semicolon comments, numeric annotation glyphs, move
// numbers and game results are removed. The moves themselves are passed
// through untouched; they are interpreted by the san package.
package movetext

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	tagPairRE     = regexp.MustCompile(`(?m)^\s*\[[^\]]*\]\s*$`)
	braceRE       = regexp.MustCompile(`\{[^}]*\}`)
	lineCommentRE = regexp.MustCompile(`;[^\n]*`)
	nagRE         = regexp.MustCompile(`\$\d+`)
	moveNumberRE  = regexp.MustCompile(`\d+\.+`)
)

// results are the PGN game termination markers.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// IsResult returns true if s is a game termination marker.
func IsResult(s string) bool {
	return results[s]
}

// Split returns the moves in text in order.
func Split(text string) []string {
	text = tagPairRE.ReplaceAllString(text, " ")
	text = braceRE.ReplaceAllString(text, " ")
	text = lineCommentRE.ReplaceAllString(text, " ")
	text = nagRE.ReplaceAllString(text, " ")
	text = moveNumberRE.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	moves := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsResult(f) {
			continue
		}
		moves = append(moves, f)
	}
	return moves
}

// Read reads all of r and returns the moves it contains.
func Read(r io.Reader) ([]string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read movetext: %w", err)
	}
	return Split(sb.String()), nil
}
