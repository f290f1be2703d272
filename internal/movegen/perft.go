// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package movegen

import (
	"github.com/oskarsson/bitchess/internal/position"
	. "github.com/oskarsson/bitchess/internal/types"
)

// RootMoveCount is one root move's leaf-node contribution to a perft run,
// reported alongside the total so a miscounting subtree can be pinned to
// its root move.
type RootMoveCount struct {
	Move  Move
	Nodes uint64
}

// PerftResult is the outcome of a top-level Perft call.
type PerftResult struct {
	Nodes     uint64
	RootMoves []RootMoveCount
}

// Perft counts leaf nodes of the move tree rooted at p to depth:
//
//	perft(d) = 1                                     if d == 0
//	         = sum over pseudo-legal m of perft(d-1)  if MakeMove(m) succeeds
//
// unmaking each move whether or not it was legal. depth <= 0 is clamped
// to 1 so the function always recurses at least one ply.
func Perft(p *position.Position, depth int) PerftResult {
	if depth <= 0 {
		depth = 1
	}
	root := GeneratePseudoLegal(p)
	result := PerftResult{RootMoves: make([]RootMoveCount, 0, root.Len())}

	for i := 0; i < root.Len(); i++ {
		m := root.At(i)
		if !p.MakeMove(m) {
			continue
		}
		nodes := perft(p, depth-1)
		p.UnmakeMove()
		result.Nodes += nodes
		result.RootMoves = append(result.RootMoves, RootMoveCount{Move: m, Nodes: nodes})
	}
	return result
}

func perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := GeneratePseudoLegal(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !p.MakeMove(m) {
			continue
		}
		nodes += perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}
