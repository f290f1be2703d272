// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package search implements the engine's negamax alpha-beta search with
// quiescence extension, MVV-LVA/killer/history move ordering and principal
// variation collection. The search is strictly single-threaded and runs to
// a fixed depth; there is no time management and no stop signal. A
// weighted semaphore of size one guards the searcher's scratch state so a
// second SearchPosition call while one is running is rejected instead of
// racing.
package search

import (
	"errors"
	"time"

	golog "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oskarsson/bitchess/internal/config"
	"github.com/oskarsson/bitchess/internal/logging"
	"github.com/oskarsson/bitchess/internal/moveslice"
	"github.com/oskarsson/bitchess/internal/position"
	. "github.com/oskarsson/bitchess/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxPly bounds the search stack: PV table, killer slots and the deepest
// quiescence line all live within this many plies.
const MaxPly = 64

// ErrSearchRunning is returned by SearchPosition when a search is already
// in progress on this Search instance.
var ErrSearchRunning = errors.New("search: a search is already running")

// Result is the outcome of one SearchPosition call.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	Nodes    uint64
	Time     time.Duration
	Nps      uint64
	PV       moveslice.MoveSlice
}

// Search owns the per-search scratch state: the triangular PV table, the
// killer-move slots and the history-heuristic counters. All of it is reset
// at the start of every SearchPosition call.
type Search struct {
	log *golog.Logger
	sem *semaphore.Weighted

	ply    int
	nodes  uint64
	qLimit int

	pvLength [MaxPly]int
	pvTable  [MaxPly][MaxPly]Move

	killerMoves  [2][MaxPly]Move
	historyMoves [PieceLength][SqLength]Value
}

// NewSearch creates a Search with its reentrancy guard armed.
func NewSearch() *Search {
	return &Search{
		log: logging.GetSearchLog(),
		sem: semaphore.NewWeighted(1),
	}
}

// SearchPosition runs a fixed-depth search on p and returns the result.
// It returns ErrSearchRunning if another search is active on this
// instance; p is owned exclusively by the search for the duration of the
// call.
func (s *Search) SearchPosition(p *position.Position, depth int) (Result, error) {
	if !s.sem.TryAcquire(1) {
		return Result{}, ErrSearchRunning
	}
	defer s.sem.Release(1)

	if depth < 1 {
		depth = 1
	}
	if depth >= MaxPly {
		depth = MaxPly - 1
	}

	s.reset()

	// quiescence may run this far past the nominal depth before standing pat
	s.qLimit = depth + config.Settings.Search.QuiescenceDepth
	if s.qLimit >= MaxPly {
		s.qLimit = MaxPly - 1
	}

	start := time.Now()
	score := s.negamax(p, depth, -MaxScore, MaxScore)
	elapsed := time.Since(start)

	// clamp to avoid a zero division on sub-millisecond searches
	npsTime := elapsed
	if npsTime < time.Millisecond {
		npsTime = time.Millisecond
	}
	nps := uint64(float64(s.nodes) / npsTime.Seconds())

	result := Result{
		BestMove: s.pvTable[0][0],
		Score:    score,
		Depth:    depth,
		Nodes:    s.nodes,
		Time:     elapsed,
		Nps:      nps,
		PV:       make(moveslice.MoveSlice, s.pvLength[0]),
	}
	copy(result.PV, s.pvTable[0][:s.pvLength[0]])

	s.log.Debug(out.Sprintf("search depth %d: best %s score %d nodes %d nps %d time %d ms",
		depth, result.BestMove.String(), score, s.nodes, nps, elapsed.Milliseconds()))

	return result, nil
}

// reset clears ply, node counter, PV, killer and history tables before a
// new search.
func (s *Search) reset() {
	s.ply = 0
	s.nodes = 0
	s.pvLength = [MaxPly]int{}
	s.pvTable = [MaxPly][MaxPly]Move{}
	s.killerMoves = [2][MaxPly]Move{}
	s.historyMoves = [PieceLength][SqLength]Value{}
}
