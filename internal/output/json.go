package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/san"
	"github.com/lgbarn/san-english-go/internal/translate"
)

// JSONMove represents a translated move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply,omitempty"`
	SAN       string `json:"san"`
	Kind      string `json:"kind,omitempty"` // "castle", "piece" or "pawn"
	Piece     string `json:"piece,omitempty"`
	Side      string `json:"side,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Capture   bool   `json:"capture,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Check     string `json:"check,omitempty"` // "check" or "checkmate"
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
}

// JSONGame holds the moves of one translated game.
type JSONGame struct {
	Mode  string     `json:"mode"`
	Moves []JSONMove `json:"moves"`
}

// MoveToJSON converts a translation result to JSON form.
func MoveToJSON(r translate.Result) JSONMove {
	jm := JSONMove{SAN: r.SAN, Text: r.Text}
	if r.Err != nil {
		jm.Error = cause(r.Err).Error()
		return jm
	}

	switch m := r.Move.(type) {
	case *san.CastleMove:
		jm.Kind = "castle"
		jm.Side = m.Side.String()
		jm.Check = checkName(m.CheckState)
	case *san.PieceMove:
		jm.Kind = "piece"
		jm.Piece = m.Piece.String()
		if m.Disambiguation.IsSet() {
			jm.From = m.Disambiguation.Text
		}
		jm.To = string(m.Destination)
		jm.Capture = m.IsCapture
		jm.Check = checkName(m.CheckState)
	case *san.PawnMove:
		jm.Kind = "pawn"
		if m.HasOriginFile() {
			jm.From = string(rune(m.OriginFile))
		}
		jm.To = string(m.Destination)
		jm.Capture = m.IsCapture
		if m.IsPromotion() {
			jm.Promotion = m.Promotion.String()
		}
		jm.Check = checkName(m.CheckState)
	}
	return jm
}

// GameToJSON converts a batch of results to JSON form, numbering plies from 1.
func GameToJSON(results []translate.Result, mode english.Mode) *JSONGame {
	jg := &JSONGame{Mode: mode.String(), Moves: make([]JSONMove, len(results))}
	for i, r := range results {
		jg.Moves[i] = MoveToJSON(r)
		jg.Moves[i].Ply = i + 1
	}
	return jg
}

func checkName(c san.CheckState) string {
	if c == san.NoCheck {
		return ""
	}
	return c.String()
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
