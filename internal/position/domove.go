// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package position

import (
	"github.com/oskarsson/bitchess/internal/assert"
	. "github.com/oskarsson/bitchess/internal/types"
)

// rightsMask[sq] is ANDed into castling rights whenever a move's source or
// target square is sq. The only non-0b1111 entries are the four rook home
// squares and the two king home squares, each clearing just the bit(s)
// that square guards.
var rightsMask [64]CastlingRights

func init() {
	for sq := range rightsMask {
		rightsMask[sq] = CastlingRights(0b1111)
	}
	rightsMask[mustSquare("e1")] = 0b1100 // white king home: both white rights gone
	rightsMask[mustSquare("h1")] = 0b1110 // white kingside rook home
	rightsMask[mustSquare("a1")] = 0b1101 // white queenside rook home
	rightsMask[mustSquare("e8")] = 0b0011 // black king home: both black rights gone
	rightsMask[mustSquare("h8")] = 0b1011 // black kingside rook home
	rightsMask[mustSquare("a8")] = 0b0111 // black queenside rook home
}

func mustSquare(alg string) Square {
	sq, ok := SquareFromAlgebraic(alg)
	if !ok {
		panic("position: bad square literal " + alg)
	}
	return sq
}

// epCapturedSquare returns the square of the pawn an en-passant capture
// removes: one rank behind the target square from the mover's perspective.
func epCapturedSquare(to Square, mover Side) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

// castleRookSquares returns the rook's source and destination for the
// castle move whose king lands on to.
func castleRookSquares(to Square) (from, dest Square) {
	switch to {
	case mustSquare("g1"):
		return mustSquare("h1"), mustSquare("f1")
	case mustSquare("c1"):
		return mustSquare("a1"), mustSquare("d1")
	case mustSquare("g8"):
		return mustSquare("h8"), mustSquare("f8")
	case mustSquare("c8"):
		return mustSquare("a8"), mustSquare("d8")
	default:
		panic("position: castle move lands on a non-castle square")
	}
}

// MakeMove applies m to the position and reports whether it was legal
// (the mover's king is not left in check). An illegal move is fully
// unwound internally before returning false, so the position is always
// left consistent regardless of the outcome.
func (p *Position) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	piece := m.Piece()
	mover := p.side
	enemy := mover.Flip()

	var captured Piece = PieceNone
	if m.IsCapture() && !m.IsEnPassant() {
		captured = p.board[to]
	}

	hist := &p.history[p.historyDepth]
	hist.move = m
	hist.captured = captured
	hist.priorSide = mover
	hist.priorCastling = p.castling
	hist.priorEp = p.ep
	hist.priorHalfMoves = p.halfMoves
	p.historyDepth++

	p.clearSquare(from, piece)
	if captured != PieceNone {
		p.clearSquare(to, captured)
	}
	if m.IsPromotion() {
		p.setSquare(to, m.Promotion())
	} else {
		p.setSquare(to, piece)
	}

	if m.IsEnPassant() {
		capSq := epCapturedSquare(to, mover)
		capturedPawn := MakePiece(enemy, Pawn)
		p.clearSquare(capSq, capturedPawn)
		hist.captured = capturedPawn
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		rook := MakePiece(mover, Rook)
		p.clearSquare(rookFrom, rook)
		p.setSquare(rookTo, rook)
	}

	if m.IsDoublePush() {
		p.ep = Square((int(from) + int(to)) / 2)
	} else {
		p.ep = SqNone
	}

	p.castling &= rightsMask[from]
	p.castling &= rightsMask[to]

	p.side = enemy
	p.halfMoves++
	p.fullMoves = p.halfMoves/2 + 1

	if assert.DEBUG {
		assert.Assert(p.consistent(), "position inconsistent after move %s", m.String())
	}

	if p.IsAttacked(p.KingSquare(mover), enemy) {
		p.UnmakeMove()
		return false
	}
	return true
}

// consistent cross-checks the mailbox against the bitboards and the basic
// board invariants (disjoint piece sets, one king each, no pawns on the
// back ranks). Debug builds run it after every make/unmake.
func (p *Position) consistent() bool {
	var union Bitboard
	for pc := Piece(0); pc < PieceLength; pc++ {
		if union&p.bitboards[pc] != 0 {
			return false
		}
		union |= p.bitboards[pc]
	}
	for sq := Square(0); sq < SqLength; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			if Test(union, sq) {
				return false
			}
		} else if !Test(p.bitboards[pc], sq) {
			return false
		}
	}
	if PopCount(p.bitboards[WhiteKing]) != 1 || PopCount(p.bitboards[BlackKing]) != 1 {
		return false
	}
	pawns := p.bitboards[WhitePawn] | p.bitboards[BlackPawn]
	return pawns&(Rank1Mask|Rank8Mask) == 0
}

// UnmakeMove reverses the most recent MakeMove, restoring the position to
// byte-identical state. It must not be called with an empty history.
func (p *Position) UnmakeMove() {
	if p.historyDepth == 0 {
		panic("position: UnmakeMove called on empty history")
	}
	p.historyDepth--
	hist := &p.history[p.historyDepth]
	m := hist.move
	from, to := m.From(), m.To()
	mover := hist.priorSide
	enemy := mover.Flip()

	p.side = mover
	p.castling = hist.priorCastling
	p.ep = hist.priorEp
	p.halfMoves = hist.priorHalfMoves
	p.fullMoves = p.halfMoves/2 + 1

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		rook := MakePiece(mover, Rook)
		p.clearSquare(rookTo, rook)
		p.setSquare(rookFrom, rook)
	}

	if m.IsPromotion() {
		p.clearSquare(to, m.Promotion())
		p.setSquare(from, m.Piece())
	} else {
		p.clearSquare(to, m.Piece())
		p.setSquare(from, m.Piece())
	}

	if m.IsEnPassant() {
		capSq := epCapturedSquare(to, mover)
		p.setSquare(capSq, MakePiece(enemy, Pawn))
	} else if hist.captured != PieceNone {
		p.setSquare(to, hist.captured)
	}

	// zero the popped slot so make/unmake restores the struct
	// byte-identically, which the round-trip tests compare directly
	*hist = historyItem{}

	if assert.DEBUG {
		assert.Assert(p.consistent(), "position inconsistent after unmake of %s", m.String())
	}
}
