// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package position represents a chess position: bitboards plus a mailbox
// array for O(1) piece-at-square lookup, side to move, castling rights,
// en-passant target and move clocks. It is mutated exclusively through
// MakeMove/UnmakeMove, which push/pop an internal undo-history stack, so
// the search never clones a position. There are no Zobrist keys and no
// repetition bookkeeping; the search does not need them.
package position

import (
	. "github.com/oskarsson/bitchess/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const maxHistory = 1024

type historyItem struct {
	move           Move
	captured       Piece
	priorSide      Side
	priorCastling  CastlingRights
	priorEp        Square
	priorHalfMoves int
}

// Position is the engine's only mutable state during search.
type Position struct {
	bitboards [PieceLength]Bitboard
	board     [SqLength]Piece
	side      Side
	castling  CastlingRights
	ep        Square
	halfMoves int
	fullMoves int

	history      [maxHistory]historyItem
	historyDepth int
}

// New returns the standard starting position.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// Side returns the side to move.
func (p *Position) Side() Side { return p.side }

// Castling returns the current castling rights mask.
func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the current en-passant target square, or SqNone.
func (p *Position) EnPassant() Square { return p.ep }

// HalfMoves returns the half-move clock.
func (p *Position) HalfMoves() int { return p.halfMoves }

// FullMoves returns the full-move counter.
func (p *Position) FullMoves() int { return p.fullMoves }

// PieceAt returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// Pieces returns the bitboard of all pieces of the given kind.
func (p *Position) Pieces(piece Piece) Bitboard { return p.bitboards[piece] }

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() Bitboard {
	var occ Bitboard
	for pc := Piece(0); pc < PieceLength; pc++ {
		occ |= p.bitboards[pc]
	}
	return occ
}

// OccupiedBySide returns the union of squares occupied by side's pieces.
func (p *Position) OccupiedBySide(side Side) Bitboard {
	var occ Bitboard
	for pt := Pawn; pt <= King; pt++ {
		occ |= p.bitboards[MakePiece(side, pt)]
	}
	return occ
}

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side Side) Square {
	return Lsb(p.bitboards[MakePiece(side, King)])
}

func (p *Position) clearSquare(sq Square, piece Piece) {
	p.bitboards[piece] = Clear(p.bitboards[piece], sq)
	p.board[sq] = PieceNone
}

func (p *Position) setSquare(sq Square, piece Piece) {
	p.bitboards[piece] = Set(p.bitboards[piece], sq)
	p.board[sq] = piece
}

// StringBoard renders the board as an 8x8 ASCII diagram, rank 8 first.
func (p *Position) StringBoard() string {
	var sb []byte
	for rank := 7; rank >= 0; rank-- {
		sb = append(sb, byte('1'+rank), ' ', ' ')
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pc := p.board[sq]
			if pc == PieceNone {
				sb = append(sb, '.', ' ')
			} else {
				sb = append(sb, pc.FenChar(), ' ')
			}
		}
		sb = append(sb, '\n')
	}
	sb = append(sb, ' ', ' ', ' ')
	for _, f := range "a b c d e f g h" {
		sb = append(sb, byte(f))
	}
	sb = append(sb, '\n')
	return string(sb)
}
