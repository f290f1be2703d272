// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package engine ties the core together behind one stateful type: a
// position, a searcher and the perft driver, reachable through the four
// operations a front-end needs - set a position, play coordinate moves
// onto it, search to a depth, run perft. The UCI handler talks only to
// this type, never to the inner packages.
package engine

import (
	"errors"
	"fmt"

	golog "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/oskarsson/bitchess/internal/logging"
	"github.com/oskarsson/bitchess/internal/movegen"
	"github.com/oskarsson/bitchess/internal/position"
	"github.com/oskarsson/bitchess/internal/search"
	. "github.com/oskarsson/bitchess/internal/types"
)

// ErrBusy is returned when Search or Perft is called while another Search
// or Perft is still running on this engine: both walk the same position,
// so overlapping calls would corrupt it.
var ErrBusy = errors.New("engine: a search or perft is already running")

// Engine owns the mutable core state. It is not safe for concurrent use,
// except that overlapping Search/Perft calls return ErrBusy instead of
// racing on the position.
type Engine struct {
	log    *golog.Logger
	sem    *semaphore.Weighted
	pos    *position.Position
	search *search.Search
}

// New creates an engine set up with the standard starting position.
func New() *Engine {
	return &Engine{
		log:    logging.GetLog(),
		sem:    semaphore.NewWeighted(1),
		pos:    position.New(),
		search: search.NewSearch(),
	}
}

// Position exposes the current position, mainly for tests and debug
// printing. Callers must not mutate it during a running Search or Perft.
func (e *Engine) Position() *position.Position {
	return e.pos
}

// SetPositionStart resets the engine to the standard starting position.
func (e *Engine) SetPositionStart() {
	e.pos = position.New()
}

// SetPositionFEN replaces the current position with the one described by
// fen. On a parse error the current position is left unchanged.
func (e *Engine) SetPositionFEN(fen string) error {
	p, err := position.NewFromFEN(fen)
	if err != nil {
		return err
	}
	e.pos = p
	return nil
}

// LoadMoves applies coordinate-notation moves (e.g. "e2e4", "e7e8q") to
// the current position in order. It stops at the first token that is not
// a legal move in the position reached so far and returns how many moves
// were applied together with an error naming the offending token. The
// position keeps the moves applied up to that point.
func (e *Engine) LoadMoves(tokens []string) (applied int, err error) {
	for _, tok := range tokens {
		m, ok := e.moveFromCoordinate(tok)
		if !ok || !e.pos.MakeMove(m) {
			e.log.Warningf("move %s is not legal in the current position", tok)
			return applied, fmt.Errorf("Invalid move: %s", tok)
		}
		applied++
	}
	return applied, nil
}

// moveFromCoordinate resolves a coordinate token against the current
// position's pseudo-legal moves. Flags and the moved piece are recovered
// from the generated move, so the token only needs from, to and an
// optional promotion letter.
func (e *Engine) moveFromCoordinate(tok string) (Move, bool) {
	if len(tok) != 4 && len(tok) != 5 {
		return MoveNone, false
	}
	from, ok := SquareFromAlgebraic(tok[0:2])
	if !ok {
		return MoveNone, false
	}
	to, ok := SquareFromAlgebraic(tok[2:4])
	if !ok {
		return MoveNone, false
	}
	promo := PtNone
	if len(tok) == 5 {
		switch tok[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return MoveNone, false
		}
	}

	moves := movegen.GeneratePseudoLegal(e.pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if promo == PtNone {
			if m.IsPromotion() {
				continue
			}
		} else if !m.IsPromotion() || m.Promotion().Type() != promo {
			continue
		}
		return m, true
	}
	return MoveNone, false
}

// Search runs a fixed-depth search on the current position.
func (e *Engine) Search(depth int) (search.Result, error) {
	if !e.sem.TryAcquire(1) {
		return search.Result{}, ErrBusy
	}
	defer e.sem.Release(1)
	return e.search.SearchPosition(e.pos, depth)
}

// Perft counts the legal move tree of the current position to depth, with
// a per-root-move breakdown.
func (e *Engine) Perft(depth int) (movegen.PerftResult, error) {
	if !e.sem.TryAcquire(1) {
		return movegen.PerftResult{}, ErrBusy
	}
	defer e.sem.Release(1)
	return movegen.Perft(e.pos, depth), nil
}
