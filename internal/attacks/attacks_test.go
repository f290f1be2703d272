// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oskarsson/bitchess/internal/types"
)

// sampleOccupancies walks a handful of subsets of mask (empty, full, and a
// few scattered bit patterns) so the magic lookup is cross-checked against
// the Hyperbola Quintessence oracle without enumerating every subset.
func sampleOccupancies(mask types.Bitboard) []types.Bitboard {
	occs := []types.Bitboard{types.BbZero, mask}
	bitsList := make([]types.Square, 0, 12)
	m := mask
	for m != types.BbZero {
		bitsList = append(bitsList, types.PopLsb(&m))
	}
	for stride := 1; stride <= 3 && stride < len(bitsList)+1; stride++ {
		var occ types.Bitboard
		for i, sq := range bitsList {
			if i%3 == stride%3 {
				occ = types.Set(occ, sq)
			}
		}
		occs = append(occs, occ)
	}
	return occs
}

func TestRookAttacksMatchReference(t *testing.T) {
	for sq := types.Square(0); sq < 64; sq++ {
		mask := RookMagics[sq].Mask
		for _, occ := range sampleOccupancies(mask) {
			want := ReferenceRookAttacks(sq, occ)
			got := RookAttacks(sq, occ)
			assert.Equal(t, want, got, "square %s occ %s", sq, occ)
		}
	}
}

func TestBishopAttacksMatchReference(t *testing.T) {
	for sq := types.Square(0); sq < 64; sq++ {
		mask := BishopMagics[sq].Mask
		for _, occ := range sampleOccupancies(mask) {
			want := ReferenceBishopAttacks(sq, occ)
			got := BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "square %s occ %s", sq, occ)
		}
	}
}

func TestQueenAttacksIsUnionOfBishopAndRook(t *testing.T) {
	sq, _ := types.SquareFromAlgebraic("d4")
	occ := types.Set(types.Set(types.BbZero, mustSq("d6")), mustSq("f4"))
	want := BishopAttacks(sq, occ) | RookAttacks(sq, occ)
	assert.Equal(t, want, QueenAttacks(sq, occ))
	assert.Equal(t, ReferenceQueenAttacks(sq, occ), QueenAttacks(sq, occ))
}

func mustSq(alg string) types.Square {
	sq, ok := types.SquareFromAlgebraic(alg)
	if !ok {
		panic("bad square literal: " + alg)
	}
	return sq
}

func TestKnightAttacksCornerAndCenter(t *testing.T) {
	a1 := mustSq("a1")
	assert.Equal(t, 2, types.PopCount(Knight[a1]))
	assert.True(t, types.Test(Knight[a1], mustSq("b3")))
	assert.True(t, types.Test(Knight[a1], mustSq("c2")))

	d4 := mustSq("d4")
	assert.Equal(t, 8, types.PopCount(Knight[d4]))
}

func TestKingAttacksCornerAndCenter(t *testing.T) {
	a1 := mustSq("a1")
	assert.Equal(t, 3, types.PopCount(King[a1]))

	d4 := mustSq("d4")
	assert.Equal(t, 8, types.PopCount(King[d4]))
}

func TestPawnAttacksDirection(t *testing.T) {
	e4 := mustSq("e4")
	assert.True(t, types.Test(Pawn[types.White][e4], mustSq("d5")))
	assert.True(t, types.Test(Pawn[types.White][e4], mustSq("f5")))
	assert.Equal(t, 2, types.PopCount(Pawn[types.White][e4]))

	assert.True(t, types.Test(Pawn[types.Black][e4], mustSq("d3")))
	assert.True(t, types.Test(Pawn[types.Black][e4], mustSq("f3")))
}

func TestRookAttacksOpenFileAndRank(t *testing.T) {
	d4 := mustSq("d4")
	atk := RookAttacks(d4, types.BbZero)
	assert.Equal(t, 14, types.PopCount(atk))
}

func TestBishopAttacksOpenDiagonals(t *testing.T) {
	d4 := mustSq("d4")
	atk := BishopAttacks(d4, types.BbZero)
	assert.Equal(t, 13, types.PopCount(atk))
}
