// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package attacks

import (
	"github.com/oskarsson/bitchess/internal/types"
)

// lineAttacks computes slider attacks along a single line (a rank, file,
// diagonal or anti-diagonal) using the Hyperbola Quintessence formula.
// It is the reference generator used only at magic-table build time (and
// in tests, as the oracle magic lookups are checked against) - not on the
// search hot path.
func lineAttacks(sq types.Square, line types.Bitboard, occ types.Bitboard) types.Bitboard {
	s := sq.SqBb()
	f := occ & line
	r := types.ReverseBits(f)
	f -= 2 * s
	r -= 2 * types.ReverseBits(s)
	return (f ^ types.ReverseBits(r)) & line
}

// ReferenceBishopAttacks computes bishop attacks on sq given full board
// occupancy occ, directly via Hyperbola Quintessence (no magic lookup).
func ReferenceBishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return lineAttacks(sq, sq.DiagMask(), occ) | lineAttacks(sq, sq.AntiDiagMask(), occ)
}

// ReferenceRookAttacks computes rook attacks on sq given full board
// occupancy occ, directly via Hyperbola Quintessence (no magic lookup).
func ReferenceRookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return lineAttacks(sq, sq.RankMask(), occ) | lineAttacks(sq, sq.FileMask(), occ)
}

// ReferenceQueenAttacks is the union of the bishop and rook reference
// attacks.
func ReferenceQueenAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return ReferenceBishopAttacks(sq, occ) | ReferenceRookAttacks(sq, occ)
}
