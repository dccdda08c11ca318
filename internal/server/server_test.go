package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/san-english-go/internal/config"
	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/logging"
	"github.com/lgbarn/san-english-go/internal/output"
)

func newTestServer() *Server {
	cfg := config.NewConfigBuilder().WithWorkers(2).Build()
	return New(cfg, logging.Discard())
}

func do(t *testing.T, s *Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealth(t *testing.T) {
	resp, body := do(t, newTestServer(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestRequestIDHeader(t *testing.T) {
	resp, _ := do(t, newTestServer(), http.MethodGet, "/healthz", "")

	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDHeader_ClientSupplied(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := newTestServer().App().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want output.JSONMove
	}{
		{
			name: "default mode",
			body: `{"san":"Nf3"}`,
			want: output.JSONMove{SAN: "Nf3", Kind: "piece", Piece: "Knight", To: "f3", Text: "Knight to f3"},
		},
		{
			name: "verbose",
			body: `{"san":"exd8=Q#","mode":"verbose"}`,
			want: output.JSONMove{SAN: "exd8=Q#", Kind: "pawn", From: "e", To: "d8", Capture: true, Promotion: "Queen", Check: "checkmate",
				Text: "pawn moves to d8, from e-file, captures, promotes to queen, resulting in checkmate"},
		},
		{
			name: "castle",
			body: `{"san":"O-O","mode":"simple"}`,
			want: output.JSONMove{SAN: "O-O", Kind: "castle", Side: "kingside", Text: "Castle kingside"},
		},
	}

	s := newTestServer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, s, http.MethodPost, "/api/translate", tc.body)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

			var got output.JSONMove
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTranslate_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"syntax error", `{"san":"Kx"}`, http.StatusUnprocessableEntity, "expected square after piece move"},
		{"lex error", `{"san":"O-"}`, http.StatusUnprocessableEntity, "malformed castle"},
		{"empty move", `{"san":"  "}`, http.StatusBadRequest, "enter a chess notation"},
		{"bad mode", `{"san":"e4","mode":"loud"}`, http.StatusBadRequest, "unknown output mode"},
		{"bad body", `{"san":`, http.StatusBadRequest, "invalid request body"},
	}

	s := newTestServer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, s, http.MethodPost, "/api/translate", tc.body)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var got map[string]string
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Contains(t, got["error"], tc.wantError)
		})
	}
}

func TestGame(t *testing.T) {
	resp, body := do(t, newTestServer(), http.MethodPost, "/api/game",
		`{"movetext":"1. e4 e5 2. Kx Nc6 1-0","mode":"simple"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got output.JSONGame
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, english.Simple.String(), got.Mode)
	require.Len(t, got.Moves, 4)
	assert.Equal(t, "Pawn to e4", got.Moves[0].Text)
	assert.Equal(t, 3, got.Moves[2].Ply)
	assert.Contains(t, got.Moves[2].Error, "expected square after piece move")
	assert.Equal(t, "Knight to c6", got.Moves[3].Text)
}

func TestGame_BadBody(t *testing.T) {
	resp, _ := do(t, newTestServer(), http.MethodPost, "/api/game", `[]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
