// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package attacks

import (
	"fmt"
	"math/bits"

	"github.com/oskarsson/bitchess/internal/types"
)

// Magic is one square's magic-bitboard entry: the relevant-occupancy mask,
// the magic multiplier, the right-shift that turns the top product bits
// into a table index, and the attack table itself.
type Magic struct {
	Mask    types.Bitboard
	Number  uint64
	Shift   uint
	Attacks []types.Bitboard
}

func (m *Magic) index(occ types.Bitboard) int {
	return int((uint64(occ&m.Mask) * m.Number) >> m.Shift)
}

// RookMagics and BishopMagics hold one Magic per square, built once at
// package init by the deterministic search below. The fixed seed makes
// every run derive the identical tables, so the numbers never need to be
// shipped as literals.
var RookMagics [64]Magic
var BishopMagics [64]Magic

func init() {
	rookMasks := make([]types.Bitboard, 64)
	bishopMasks := make([]types.Bitboard, 64)
	for sq := types.Square(0); sq < 64; sq++ {
		rookMasks[sq] = rookRelevantMask(sq)
		bishopMasks[sq] = bishopRelevantMask(sq)
	}

	prng := newMagicPRNG()
	for sq := types.Square(0); sq < 64; sq++ {
		RookMagics[sq] = findMagic(prng, sq, rookMasks[sq], ReferenceRookAttacks)
	}
	for sq := types.Square(0); sq < 64; sq++ {
		BishopMagics[sq] = findMagic(prng, sq, bishopMasks[sq], ReferenceBishopAttacks)
	}
}

// rookRelevantMask returns the rook's relevant-occupancy mask for sq: the
// squares a blocker on could actually change the attack set, i.e. every
// square the rook slides over excluding the board edge (a piece on the
// edge can never be "passed", so its occupancy never affects the result).
func rookRelevantMask(sq types.Square) types.Bitboard {
	var m types.Bitboard
	f, r := int(sq.File()), int(sq.Rank0())
	for rr := r + 1; rr <= 6; rr++ {
		m = types.Set(m, types.Square(rr*8+f))
	}
	for rr := r - 1; rr >= 1; rr-- {
		m = types.Set(m, types.Square(rr*8+f))
	}
	for ff := f + 1; ff <= 6; ff++ {
		m = types.Set(m, types.Square(r*8+ff))
	}
	for ff := f - 1; ff >= 1; ff-- {
		m = types.Set(m, types.Square(r*8+ff))
	}
	return m
}

// bishopRelevantMask is rookRelevantMask's diagonal counterpart.
func bishopRelevantMask(sq types.Square) types.Bitboard {
	var m types.Bitboard
	f, r := int(sq.File()), int(sq.Rank0())
	for ff, rr := f+1, r+1; ff <= 6 && rr <= 6; ff, rr = ff+1, rr+1 {
		m = types.Set(m, types.Square(rr*8+ff))
	}
	for ff, rr := f-1, r+1; ff >= 1 && rr <= 6; ff, rr = ff-1, rr+1 {
		m = types.Set(m, types.Square(rr*8+ff))
	}
	for ff, rr := f+1, r-1; ff <= 6 && rr >= 1; ff, rr = ff+1, rr-1 {
		m = types.Set(m, types.Square(rr*8+ff))
	}
	for ff, rr := f-1, r-1; ff >= 1 && rr >= 1; ff, rr = ff-1, rr-1 {
		m = types.Set(m, types.Square(rr*8+ff))
	}
	return m
}

// OccupancyFromIndex synthesizes the index'th occupancy subset of mask:
// the bits of index select the 1-bits of mask in LSB-first order. Exported
// for the offline magic verification tool, which enumerates every subset.
func OccupancyFromIndex(index int, mask types.Bitboard) types.Bitboard {
	var occ types.Bitboard
	m := mask
	bit := 0
	for m != types.BbZero {
		sq := types.PopLsb(&m)
		if index&(1<<uint(bit)) != 0 {
			occ = types.Set(occ, sq)
		}
		bit++
	}
	return occ
}

// magicPRNG is the classic xorshift32 generator used by magic-number
// searches, fixed-seeded so the whole 128-square search is fully
// deterministic and reproducible run to run.
type magicPRNG struct {
	state uint32
}

func newMagicPRNG() *magicPRNG {
	return &magicPRNG{state: 1804289383}
}

func (p *magicPRNG) rand32() uint32 {
	x := p.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	p.state = x
	return x
}

func (p *magicPRNG) rand64() uint64 {
	n1 := uint64(p.rand32()) & 0xFFFF
	n2 := uint64(p.rand32()) & 0xFFFF
	n3 := uint64(p.rand32()) & 0xFFFF
	n4 := uint64(p.rand32()) & 0xFFFF
	return n1 | n2<<16 | n3<<32 | n4<<48
}

// randMagic composes three sparse 64-bit draws with AND, the standard trick
// (also used by Stockfish-style generators) for biasing candidates toward
// the few set high bits a good magic multiplier needs.
func (p *magicPRNG) randMagic() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}

// maxMagicTries bounds the search per square; the real routine converges in
// a few hundred to a few thousand tries for every square on a standard
// board, so this is purely a runaway guard.
const maxMagicTries = 1_000_000_000

// findMagic searches for a valid magic number for sq's mask, advancing the
// shared prng, and builds the square's attack table against it. reference
// is the Hyperbola Quintessence slider (ReferenceRookAttacks or
// ReferenceBishopAttacks) used as ground truth for every occupancy subset.
func findMagic(prng *magicPRNG, sq types.Square, mask types.Bitboard, reference func(types.Square, types.Bitboard) types.Bitboard) Magic {
	relBits := types.PopCount(mask)
	shift := uint(64 - relBits)
	size := 1 << relBits

	occupancies := make([]types.Bitboard, size)
	attacks := make([]types.Bitboard, size)
	for i := 0; i < size; i++ {
		occupancies[i] = OccupancyFromIndex(i, mask)
		attacks[i] = reference(sq, occupancies[i])
	}

	table := make([]types.Bitboard, size)
	used := make([]bool, size)

	for try := 0; try < maxMagicTries; try++ {
		candidate := prng.randMagic()

		if bits.OnesCount64(uint64(mask)*candidate&0xFF00000000000000) < 6 {
			continue
		}

		for i := range used {
			used[i] = false
		}
		ok := true
		for i := 0; i < size; i++ {
			idx := int((uint64(occupancies[i]) * candidate) >> shift)
			if !used[idx] {
				used[idx] = true
				table[idx] = attacks[i]
			} else if table[idx] != attacks[i] {
				ok = false
				break
			}
		}
		if ok {
			shipped := make([]types.Bitboard, size)
			copy(shipped, table)
			return Magic{Mask: mask, Number: candidate, Shift: shift, Attacks: shipped}
		}
	}
	panic(fmt.Sprintf("attacks: no magic number found for square %s", sq))
}

// BishopAttacks returns the bishop attack set on sq given full-board
// occupancy occ, via magic-bitboard lookup.
func BishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &BishopMagics[sq]
	return m.Attacks[m.index(occ)]
}

// RookAttacks returns the rook attack set on sq given full-board occupancy
// occ, via magic-bitboard lookup.
func RookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &RookMagics[sq]
	return m.Attacks[m.index(occ)]
}

// QueenAttacks is the union of bishop and rook attacks on sq.
func QueenAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}
