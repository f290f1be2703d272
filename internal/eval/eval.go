// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package eval scores a position in centipawns: material plus piece-square
// tables, nothing else. The score is computed from White's perspective and
// negated for Black so the caller always receives a side-to-move relative
// value (negamax convention). There is no game-phase interpolation and no
// mobility or king-safety term - the evaluation is deliberately the
// simple material + PSQT model, with the queen's positional table left at
// zero.
package eval

import (
	"github.com/oskarsson/bitchess/internal/position"
	. "github.com/oskarsson/bitchess/internal/types"
)

// materialValue holds the per-piece-type material constants. Conventional
// relative values; the king's large constant keeps any material sum well
// below MateScore.
var materialValue = [6]Value{
	Pawn:   100,
	Knight: 300,
	Bishop: 350,
	Rook:   500,
	Queen:  1000,
	King:   10000,
}

// MaterialValue returns the material constant for a piece type.
func MaterialValue(pt PieceType) Value {
	return materialValue[pt]
}

// The piece-square tables are written the way a board is read from White's
// side: the first literal row is rank 8, the last is rank 1. With this
// package's a1=0 square numbering that means White indexes a table with
// sq^0x38 (vertical mirror) and Black with sq directly - the two colors'
// lookups mirror each other vertically, as they must.

var pawnTable = [64]Value{
	90, 90, 90, 90, 90, 90, 90, 90,
	30, 30, 30, 40, 40, 30, 30, 30,
	20, 20, 20, 30, 30, 30, 20, 20,
	10, 10, 10, 20, 20, 10, 10, 10,
	5, 5, 10, 20, 20, 5, 5, 5,
	0, 0, 0, 5, 5, 0, 0, 0,
	0, 0, 0, -10, -10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]Value{
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 10, 10, 0, 0, -5,
	-5, 5, 20, 20, 20, 20, 5, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 5, 20, 10, 10, 20, 5, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, -10, 0, 0, 0, 0, -10, -5,
}

var bishopTable = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 10, 0, 0, 0, 0, 10, 0,
	0, 30, 0, 0, 0, 0, 30, 0,
	0, 0, -10, 0, 0, -10, 0, 0,
}

var rookTable = [64]Value{
	50, 50, 50, 50, 50, 50, 50, 50,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 0, 20, 20, 0, 0, 0,
}

// queenTable stays all-zero: the queen gets no positional contribution
// until real tuning says otherwise.
var queenTable = [64]Value{}

var kingTable = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 5, 5, 10, 10, 5, 5, 0,
	0, 5, 10, 20, 20, 10, 5, 0,
	0, 5, 10, 20, 20, 10, 5, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 5, 5, -5, -5, 0, 5, 0,
	0, 0, 5, 0, -15, 0, 10, 0,
}

var psqt = [6]*[64]Value{
	Pawn:   &pawnTable,
	Knight: &knightTable,
	Bishop: &bishopTable,
	Rook:   &rookTable,
	Queen:  &queenTable,
	King:   &kingTable,
}

// Evaluate scores p in centipawns, relative to the side to move.
func Evaluate(p *position.Position) Value {
	var score Value

	for pt := Pawn; pt <= King; pt++ {
		table := psqt[pt]

		white := p.Pieces(MakePiece(White, pt))
		for white != BbZero {
			sq := PopLsb(&white)
			score += materialValue[pt] + table[sq^0x38]
		}

		black := p.Pieces(MakePiece(Black, pt))
		for black != BbZero {
			sq := PopLsb(&black)
			score -= materialValue[pt] + table[sq]
		}
	}

	if p.Side() == Black {
		return -score
	}
	return score
}
