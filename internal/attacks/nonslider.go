// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package attacks is the bitboard attack oracle: direct lookup tables for
// pawns, knights and kings, a Hyperbola Quintessence reference slider used
// only to build tables, and the magic-bitboard machinery sliders use at
// runtime. Everything here is precomputed once at package init and is
// safe to share read-only across goroutines.
package attacks

import (
	"github.com/oskarsson/bitchess/internal/types"
)

// Pawn[side][sq] is the set of squares a pawn of that side on sq attacks.
var Pawn [2][64]types.Bitboard

// Knight[sq] and King[sq] are the leaper attack sets for a piece on sq.
var Knight [64]types.Bitboard
var King [64]types.Bitboard

type leaperOffset struct {
	delta         int
	wantFileDelta int // |target.File() - sq.File()|, used to reject wraparound
}

var knightOffsets = []leaperOffset{
	{17, 1}, {15, 1}, {10, 2}, {6, 2},
	{-6, 2}, {-10, 2}, {-15, 1}, {-17, 1},
}

var kingOffsets = []leaperOffset{
	{1, 1}, {-1, 1}, {8, 0}, {-8, 0},
	{9, 1}, {7, 1}, {-7, 1}, {-9, 1},
}

func leaperAttacks(sq types.Square, offsets []leaperOffset) types.Bitboard {
	var bb types.Bitboard
	for _, o := range offsets {
		target := int(sq) + o.delta
		if target < 0 || target > 63 {
			continue
		}
		t := types.Square(target)
		fileDelta := int(t.File()) - int(sq.File())
		if fileDelta < 0 {
			fileDelta = -fileDelta
		}
		if fileDelta != o.wantFileDelta {
			continue
		}
		bb = types.Set(bb, t)
	}
	return bb
}

func pawnAttacks(sq types.Square, side types.Side) types.Bitboard {
	var offsets []leaperOffset
	if side == types.White {
		// White advances toward rank 8, i.e. toward increasing square index.
		offsets = []leaperOffset{{7, 1}, {9, 1}}
	} else {
		offsets = []leaperOffset{{-9, 1}, {-7, 1}}
	}
	return leaperAttacks(sq, offsets)
}

func init() {
	for sq := types.Square(0); sq < 64; sq++ {
		Pawn[types.White][sq] = pawnAttacks(sq, types.White)
		Pawn[types.Black][sq] = pawnAttacks(sq, types.Black)
		Knight[sq] = leaperAttacks(sq, knightOffsets)
		King[sq] = leaperAttacks(sq, kingOffsets)
	}
}
