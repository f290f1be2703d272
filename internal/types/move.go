// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package types

import "strings"

// Move is a packed move: only the low 24 bits are used.
//
//	bits  0-5   source square
//	bits  6-11  target square
//	bits 12-15  moved piece (0-11)
//	bits 16-19  promotion piece (0 = none)
//	bit  20     capture flag
//	bit  21     double-push flag
//	bit  22     en-passant flag
//	bit  23     castle flag
type Move uint32

// MoveNone is the zero move, used as a "no move" sentinel (e.g. an empty PV
// slot or "no killer recorded yet").
const MoveNone Move = 0

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePieceShift = 12
	movePromoShift = 16
	moveFieldMask  = 0x3F
	movePieceMask  = 0xF

	moveCaptureBit    = 1 << 20
	moveDoublePushBit = 1 << 21
	moveEnPassantBit  = 1 << 22
	moveCastleBit     = 1 << 23
)

// MoveFlags bundles the four boolean flags encoded with a move.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castle     bool
}

// EncodeMove packs a move. A promotion value of 0 (WhitePawn's Piece
// value, which can never itself be a promotion target) means "no
// promotion".
func EncodeMove(from, to Square, piece Piece, promotion Piece, flags MoveFlags) Move {
	m := Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(piece)<<movePieceShift |
		Move(promotion)<<movePromoShift
	if flags.Capture {
		m |= moveCaptureBit
	}
	if flags.DoublePush {
		m |= moveDoublePushBit
	}
	if flags.EnPassant {
		m |= moveEnPassantBit
	}
	if flags.Castle {
		m |= moveCastleBit
	}
	return m
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square(int(m>>moveFromShift) & moveFieldMask)
}

// To returns the move's target square.
func (m Move) To() Square {
	return Square(int(m>>moveToShift) & moveFieldMask)
}

// Piece returns the moved piece.
func (m Move) Piece() Piece {
	return Piece(int(m>>movePieceShift) & movePieceMask)
}

// Promotion returns the promotion piece, or the zero Piece value if this
// move does not promote. Use IsPromotion to disambiguate.
func (m Move) Promotion() Piece {
	return Piece(int(m>>movePromoShift) & movePieceMask)
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion() != 0
}

// IsCapture reports the capture flag (set for en-passant captures too).
func (m Move) IsCapture() bool {
	return m&moveCaptureBit != 0
}

// IsDoublePush reports the double-pawn-push flag.
func (m Move) IsDoublePush() bool {
	return m&moveDoublePushBit != 0
}

// IsEnPassant reports the en-passant capture flag.
func (m Move) IsEnPassant() bool {
	return m&moveEnPassantBit != 0
}

// IsCastle reports the castle flag.
func (m Move) IsCastle() bool {
	return m&moveCastleBit != 0
}

// Flags reconstructs the MoveFlags used to encode m.
func (m Move) Flags() MoveFlags {
	return MoveFlags{
		Capture:    m.IsCapture(),
		DoublePush: m.IsDoublePush(),
		EnPassant:  m.IsEnPassant(),
		Castle:     m.IsCastle(),
	}
}

var promoLetters = map[PieceType]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}

// String formats the move in coordinate notation for UCI output:
// from + to + optional promotion letter. Moved piece and flags are
// intentionally not printed.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	sb := strings.Builder{}
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteByte(promoLetters[m.Promotion().Type()])
	}
	return sb.String()
}
