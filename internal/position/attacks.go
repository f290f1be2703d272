// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package position

import (
	"github.com/oskarsson/bitchess/internal/attacks"
	. "github.com/oskarsson/bitchess/internal/types"
)

// IsAttacked reports whether sq is attacked by any of by's pieces. Pawns
// use the "reverse attack" trick: a pawn of the opposite color standing
// on sq would attack exactly the squares a real by-pawn attacking sq
// could stand on, so intersecting that lookup with by's pawn bitboard
// answers the question without a separate by-color pawn-attack table.
func (p *Position) IsAttacked(sq Square, by Side) bool {
	occ := p.Occupied()

	if attacks.Pawn[by.Flip()][sq]&p.bitboards[MakePiece(by, Pawn)] != 0 {
		return true
	}
	if attacks.Knight[sq]&p.bitboards[MakePiece(by, Knight)] != 0 {
		return true
	}
	if attacks.King[sq]&p.bitboards[MakePiece(by, King)] != 0 {
		return true
	}

	bishopsQueens := p.bitboards[MakePiece(by, Bishop)] | p.bitboards[MakePiece(by, Queen)]
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}

	rooksQueens := p.bitboards[MakePiece(by, Rook)] | p.bitboards[MakePiece(by, Queen)]
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}

	return false
}
