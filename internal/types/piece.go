// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package types

// Side is the side to move: White (0) or Black (1).
type Side int8

const (
	White Side = iota
	Black
)

// Flip returns the opposing side.
func (c Side) Flip() Side {
	return c ^ 1
}

func (c Side) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a piece's kind, independent of color: 0=Pawn .. 5=King.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
)

var pieceTypeLetters = "PNBRQK"

func (pt PieceType) String() string {
	if pt < Pawn || pt > King {
		return "-"
	}
	return string(pieceTypeLetters[pt])
}

// Piece is 0-11 in the order WP,WN,WB,WR,WQ,WK,BP,BN,BB,BR,BQ,BK. PieceNone
// marks an empty square.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = 12
)

// MakePiece composes a Piece from a side and a piece type.
func MakePiece(c Side, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

// Side returns the piece's color.
func (p Piece) Side() Side {
	return Side(p / 6)
}

// Type returns the piece's type, independent of color.
func (p Piece) Type() PieceType {
	return PieceType(p % 6)
}

var pieceFenLetters = [PieceLength]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// FenChar returns the FEN piece-placement letter for p.
func (p Piece) FenChar() byte {
	if p < 0 || p >= PieceLength {
		return '.'
	}
	return pieceFenLetters[p]
}

func (p Piece) String() string {
	return string(p.FenChar())
}

// PieceFromFenChar maps a FEN piece-placement letter back to a Piece. ok is
// false for any character that isn't one of PNBRQKpnbrqk.
func PieceFromFenChar(c byte) (p Piece, ok bool) {
	for i, fc := range pieceFenLetters {
		if fc == c {
			return Piece(i), true
		}
	}
	return PieceNone, false
}

// CastlingRights is the 4-bit mask {WK=1, WQ=2, BK=4, BQ=8}.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside
)

// KingsideRight and QueensideRight return the castling bit relevant to c.
func KingsideRight(c Side) CastlingRights {
	if c == White {
		return CastleWhiteKingside
	}
	return CastleBlackKingside
}

func QueensideRight(c Side) CastlingRights {
	if c == White {
		return CastleWhiteQueenside
	}
	return CastleBlackQueenside
}

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	s := ""
	if cr&CastleWhiteKingside != 0 {
		s += "K"
	}
	if cr&CastleWhiteQueenside != 0 {
		s += "Q"
	}
	if cr&CastleBlackKingside != 0 {
		s += "k"
	}
	if cr&CastleBlackQueenside != 0 {
		s += "q"
	}
	return s
}
