// Package translate runs the SAN pipeline (tokenize, parse, render) for
// single moves and for whole games.
package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/errors"
	"github.com/lgbarn/san-english-go/internal/san"
	"github.com/lgbarn/san-english-go/internal/worker"
)

// Result is the outcome of translating one move.
type Result struct {
	Index  int // 0-based position in the batch
	SAN    string
	Tokens []san.Token
	Move   san.Move
	Text   string
	Err    error
}

// Failed returns true if the move could not be translated.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Move translates a single move string. Surrounding whitespace is ignored;
// an empty string fails with errors.ErrEmptyInput.
func Move(text string, mode english.Mode) Result {
	res := Result{SAN: strings.TrimSpace(text)}
	if res.SAN == "" {
		res.Err = errors.ErrEmptyInput
		return res
	}

	tokens, err := san.Tokenize(res.SAN)
	if err != nil {
		res.Err = err
		return res
	}
	res.Tokens = tokens

	move, err := san.Parse(tokens)
	if err != nil {
		res.Err = err
		return res
	}
	res.Move = move
	res.Text = english.Render(move, mode)
	return res
}

// Options configures Batch.
type Options struct {
	Mode       english.Mode
	Workers    int
	BufferSize int
	File       string // Source name used in error context
	Logger     *slog.Logger
}

// Batch translates moves concurrently and returns results in input order.
// A failing move does not stop the batch; its Err is a *errors.MoveError.
// When ctx is cancelled, moves not yet translated carry ctx.Err().
func Batch(ctx context.Context, moves []string, opts Options) []Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("batch", uuid.NewString())
	logger.Debug("translating moves", "moves", len(moves), "workers", opts.Workers, "mode", opts.Mode)

	results := make([]Result, len(moves))
	if len(moves) == 0 {
		return results
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		r := Move(item.SAN, opts.Mode)
		return worker.ProcessResult{
			SAN:    item.SAN,
			Index:  item.Index,
			Tokens: r.Tokens,
			Move:   r.Move,
			Text:   r.Text,
			Error:  r.Err,
		}
	}, worker.WithWorkers(opts.Workers), worker.WithBufferSize(opts.BufferSize))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			if ctx.Err() != nil {
				pool.Stop()
			}
			pool.Submit(worker.WorkItem{SAN: m, Index: i})
		}
	}()

	failed := 0
	for pr := range pool.Results() {
		r := Result{
			Index:  pr.Index,
			SAN:    pr.SAN,
			Tokens: pr.Tokens,
			Move:   pr.Move,
			Text:   pr.Text,
			Err:    pr.Error,
		}
		if pr.Skipped {
			r.Err = ctx.Err()
		}
		if r.Err != nil {
			failed++
			r.Err = &errors.MoveError{Err: r.Err, Ply: pr.Index + 1, MoveText: pr.SAN, File: opts.File}
			logger.Debug("move failed", "ply", pr.Index+1, "san", pr.SAN, "error", r.Err)
		}
		results[pr.Index] = r
	}

	if err := ctx.Err(); err != nil {
		logger.Warn("batch cancelled", "error", err)
	}
	logger.Info("batch translated", "moves", len(moves), "failed", failed)
	return results
}
