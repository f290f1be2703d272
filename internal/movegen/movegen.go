// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package movegen generates pseudo-legal moves for a position; legality
// (king safety) is left to position.MakeMove. Output order is fixed -
// piece type by value P,N,B,R,Q,K, LSB-first source within a type,
// LSB-first target within a source - because perft diffs and search
// move-ordering both depend on reproducing the exact same tree every run.
// This package only builds the list; the searcher owns ordering it.
package movegen

import (
	"github.com/oskarsson/bitchess/internal/attacks"
	"github.com/oskarsson/bitchess/internal/moveslice"
	"github.com/oskarsson/bitchess/internal/position"
	. "github.com/oskarsson/bitchess/internal/types"
)

// MaxMoves bounds a single position's pseudo-legal move count generously;
// the true maximum for any reachable chess position is far below this.
const MaxMoves = 256

// GenMode selects which buckets of moves Generate produces.
type GenMode uint8

const (
	// GenCaptures yields captures, capture-promotions and en-passant
	// captures only - quiescence search's move source.
	GenCaptures GenMode = 1 << iota
	// GenQuiet yields non-capturing moves, including quiet promotions,
	// double pushes and castling.
	GenQuiet
	// GenAll yields every pseudo-legal move.
	GenAll = GenCaptures | GenQuiet
)

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegal returns every pseudo-legal move for the side to move.
func GeneratePseudoLegal(p *position.Position) *moveslice.MoveSlice {
	ms := moveslice.NewMoveSlice(MaxMoves)
	Generate(p, GenAll, ms)
	return ms
}

// GenerateCaptures returns only the capturing pseudo-legal moves, the move
// source quiescence search recurses on.
func GenerateCaptures(p *position.Position) *moveslice.MoveSlice {
	ms := moveslice.NewMoveSlice(MaxMoves)
	Generate(p, GenCaptures, ms)
	return ms
}

// Generate appends mode's pseudo-legal moves to dest in the fixed order:
// pawn, knight, bishop, rook, queen, king (normal then castling).
func Generate(p *position.Position, mode GenMode, dest *moveslice.MoveSlice) {
	genPawnMoves(p, mode, dest)
	genLeaperMoves(p, Knight, attacks.Knight[:], mode, dest)
	genSliderMoves(p, Bishop, attacks.BishopAttacks, mode, dest)
	genSliderMoves(p, Rook, attacks.RookAttacks, mode, dest)
	genSliderMoves(p, Queen, attacks.QueenAttacks, mode, dest)
	genLeaperMoves(p, King, attacks.King[:], mode, dest)
	if mode&GenQuiet != 0 {
		genCastling(p, dest)
	}
}

func genPawnMoves(p *position.Position, mode GenMode, dest *moveslice.MoveSlice) {
	own := p.Side()
	enemy := own.Flip()
	piece := MakePiece(own, Pawn)
	pawns := p.Pieces(piece)
	occ := p.Occupied()
	enemyOcc := p.OccupiedBySide(enemy)

	push := 8
	startRank := Rank2Mask
	promoRank := Rank7Mask
	if own == Black {
		push = -8
		startRank = Rank7Mask
		promoRank = Rank2Mask
	}

	remaining := pawns
	for remaining != BbZero {
		from := PopLsb(&remaining)

		// collect every target of this pawn into one bitboard first, so
		// a single PopLsb walk emits them in ascending-square order no
		// matter how captures and pushes interleave
		targets := BbZero
		if mode&GenCaptures != 0 {
			targets |= attacks.Pawn[own][from] & enemyOcc
			if p.EnPassant() != SqNone && Test(attacks.Pawn[own][from], p.EnPassant()) {
				targets = Set(targets, p.EnPassant())
			}
		}
		if mode&GenQuiet != 0 {
			to := Square(int(from) + push)
			if to.IsValid() && !Test(occ, to) {
				targets = Set(targets, to)
				if Test(startRank, from) {
					to2 := Square(int(to) + push)
					if to2.IsValid() && !Test(occ, to2) {
						targets = Set(targets, to2)
					}
				}
			}
		}

		for targets != BbZero {
			to := PopLsb(&targets)
			capture := Test(enemyOcc, to)
			switch {
			case Test(promoRank, from):
				for _, pt := range promotionTypes {
					dest.PushBack(EncodeMove(from, to, piece, MakePiece(own, pt), MoveFlags{Capture: capture}))
				}
			case !capture && to.File() != from.File():
				// a diagonal target on an empty square is the en-passant capture
				dest.PushBack(EncodeMove(from, to, piece, 0, MoveFlags{Capture: true, EnPassant: true}))
			default:
				dest.PushBack(EncodeMove(from, to, piece, 0, MoveFlags{
					Capture:    capture,
					DoublePush: to == Square(int(from)+2*push),
				}))
			}
		}
	}
}

func genLeaperMoves(p *position.Position, pt PieceType, table []Bitboard, mode GenMode, dest *moveslice.MoveSlice) {
	own := p.Side()
	piece := MakePiece(own, pt)
	friendlyOcc := p.OccupiedBySide(own)
	enemyOcc := p.OccupiedBySide(own.Flip())

	pieces := p.Pieces(piece)
	for pieces != BbZero {
		from := PopLsb(&pieces)
		targets := table[from] &^ friendlyOcc
		if mode != GenAll {
			if mode&GenCaptures != 0 {
				targets &= enemyOcc
			} else {
				targets &^= enemyOcc
			}
		}
		rem := targets
		for rem != BbZero {
			to := PopLsb(&rem)
			dest.PushBack(EncodeMove(from, to, piece, 0, MoveFlags{Capture: Test(enemyOcc, to)}))
		}
	}
}

func genSliderMoves(p *position.Position, pt PieceType, attackFn func(Square, Bitboard) Bitboard, mode GenMode, dest *moveslice.MoveSlice) {
	own := p.Side()
	piece := MakePiece(own, pt)
	friendlyOcc := p.OccupiedBySide(own)
	enemyOcc := p.OccupiedBySide(own.Flip())
	occ := p.Occupied()

	pieces := p.Pieces(piece)
	for pieces != BbZero {
		from := PopLsb(&pieces)
		targets := attackFn(from, occ) &^ friendlyOcc
		if mode != GenAll {
			if mode&GenCaptures != 0 {
				targets &= enemyOcc
			} else {
				targets &^= enemyOcc
			}
		}
		rem := targets
		for rem != BbZero {
			to := PopLsb(&rem)
			dest.PushBack(EncodeMove(from, to, piece, 0, MoveFlags{Capture: Test(enemyOcc, to)}))
		}
	}
}

func genCastling(p *position.Position, dest *moveslice.MoveSlice) {
	own := p.Side()
	enemy := own.Flip()
	occ := p.Occupied()

	type castleSide struct {
		right       CastlingRights
		kingFrom    string
		kingTo      string
		between     []string
		passThrough string
	}

	var sides []castleSide
	if own == White {
		sides = []castleSide{
			{CastleWhiteKingside, "e1", "g1", []string{"f1", "g1"}, "f1"},
			{CastleWhiteQueenside, "e1", "c1", []string{"b1", "c1", "d1"}, "d1"},
		}
	} else {
		sides = []castleSide{
			{CastleBlackKingside, "e8", "g8", []string{"f8", "g8"}, "f8"},
			{CastleBlackQueenside, "e8", "c8", []string{"b8", "c8", "d8"}, "d8"},
		}
	}

	for _, cs := range sides {
		if p.Castling()&cs.right == 0 {
			continue
		}
		clear := true
		for _, sq := range cs.between {
			if Test(occ, mustSq(sq)) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		kingFrom := mustSq(cs.kingFrom)
		if p.IsAttacked(kingFrom, enemy) {
			continue
		}
		if p.IsAttacked(mustSq(cs.passThrough), enemy) {
			continue
		}
		dest.PushBack(EncodeMove(kingFrom, mustSq(cs.kingTo), MakePiece(own, King), 0, MoveFlags{Castle: true}))
	}
}

func mustSq(alg string) Square {
	sq, ok := SquareFromAlgebraic(alg)
	if !ok {
		panic("movegen: bad square literal " + alg)
	}
	return sq
}
