// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/oskarsson/bitchess/internal/types"
)

// NewFromFEN parses a standard 6-field FEN string into a Position. It
// rejects any FEN that does not have exactly six whitespace-separated
// fields, contains an unknown placement character, has a side field other
// than "w"/"b", or has a malformed en-passant square - each failure comes
// back as a short, specific error and leaves no partially-built Position
// behind.
func NewFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	p := &Position{}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return nil, fmt.Errorf("fen: side to move must be 'w' or 'b', got %q", fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.castling = castling

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	p.ep = ep

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
	}
	p.halfMoves = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return nil, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
	}
	p.fullMoves = full

	return p, nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: piece placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				if file > 7 {
					return fmt.Errorf("fen: rank %d overflows past the h-file", rank+1)
				}
				piece, ok := PieceFromFenChar(byte(c))
				if !ok {
					return fmt.Errorf("fen: unknown piece character %q", c)
				}
				sq := Square(rank*8 + file)
				p.setSquare(sq, piece)
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %d does not sum to 8 files", rank+1)
		}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			rights |= CastleWhiteKingside
		case 'Q':
			rights |= CastleWhiteQueenside
		case 'k':
			rights |= CastleBlackKingside
		case 'q':
			rights |= CastleBlackQueenside
		default:
			return 0, fmt.Errorf("fen: unknown castling character %q", c)
		}
	}
	return rights, nil
}

func parseEnPassant(field string) (Square, error) {
	if field == "-" {
		return SqNone, nil
	}
	sq, ok := SquareFromAlgebraic(field)
	if !ok {
		return SqNone, fmt.Errorf("fen: malformed en-passant square %q", field)
	}
	return sq, nil
}
