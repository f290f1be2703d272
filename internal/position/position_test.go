// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package position

import (
	"testing"

	. "github.com/oskarsson/bitchess/internal/types"
)

func TestNewFromFENRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"too many fields", StartFEN + " extra"},
		{"bad placement char", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank underflows", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling char", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqx - 0 1"},
		{"bad ep square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewFromFEN(c.fen); err == nil {
				t.Fatalf("expected error for %q", c.fen)
			}
		})
	}
}

func TestStartPositionInvariants(t *testing.T) {
	p := New()
	if p.Side() != White {
		t.Fatalf("expected white to move")
	}
	if p.Castling() != 0b1111 {
		t.Fatalf("expected all castling rights, got %04b", p.Castling())
	}
	if p.EnPassant() != SqNone {
		t.Fatalf("expected no en-passant target")
	}

	var union Bitboard
	count := 0
	for pc := Piece(0); pc < PieceLength; pc++ {
		bb := p.Pieces(pc)
		if bb&union != 0 {
			t.Fatalf("piece bitboards overlap for piece %d", pc)
		}
		union |= bb
		count += PopCount(bb)
	}
	if count != 32 {
		t.Fatalf("expected 32 pieces on the start position, got %d", count)
	}
	if PopCount(p.Pieces(MakePiece(White, King))) != 1 || PopCount(p.Pieces(MakePiece(Black, King))) != 1 {
		t.Fatalf("expected exactly one king per side")
	}

	rank1 := Bitboard(0xFF)
	rank8 := rank1 << 56
	whitePawns := p.Pieces(MakePiece(White, Pawn))
	blackPawns := p.Pieces(MakePiece(Black, Pawn))
	if whitePawns&(rank1|rank8) != 0 || blackPawns&(rank1|rank8) != 0 {
		t.Fatalf("no pawns should sit on rank 1 or rank 8")
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := New()

	snapshot := *p
	e2, _ := SquareFromAlgebraic("e2")
	e4, _ := SquareFromAlgebraic("e4")
	m := EncodeMove(e2, e4, MakePiece(White, Pawn), WhitePawn, MoveFlags{DoublePush: true})

	if ok := p.MakeMove(m); !ok {
		t.Fatalf("expected legal move")
	}
	if p.Side() != Black {
		t.Fatalf("side to move did not flip")
	}
	if p.EnPassant() == SqNone {
		t.Fatalf("expected en-passant target after double push")
	}

	p.UnmakeMove()
	if *p != snapshot {
		t.Fatalf("position was not restored byte-identically after unmake")
	}
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// The f2 pawn shields the white king on e1 from a black bishop on h4
	// along the e1-h4 diagonal; pushing it to f4 would expose the king, so
	// MakeMove must undo the move and report it illegal.
	p, err := NewFromFEN("4k3/8/8/8/7b/8/5P2/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	snapshot := *p
	f2, _ := SquareFromAlgebraic("f2")
	f4, _ := SquareFromAlgebraic("f4")
	m := EncodeMove(f2, f4, MakePiece(White, Pawn), WhitePawn, MoveFlags{DoublePush: true})

	if ok := p.MakeMove(m); ok {
		t.Fatalf("expected illegal move to be rejected")
	}
	if *p != snapshot {
		t.Fatalf("rejected move left the position mutated")
	}
}

func TestMakeMoveCastleMovesRook(t *testing.T) {
	p, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	e1, _ := SquareFromAlgebraic("e1")
	g1, _ := SquareFromAlgebraic("g1")
	m := EncodeMove(e1, g1, MakePiece(White, King), WhitePawn, MoveFlags{Castle: true})

	if ok := p.MakeMove(m); !ok {
		t.Fatalf("expected castle to be legal")
	}
	f1, _ := SquareFromAlgebraic("f1")
	h1, _ := SquareFromAlgebraic("h1")
	if p.PieceAt(g1) != MakePiece(White, King) {
		t.Fatalf("king did not land on g1")
	}
	if p.PieceAt(f1) != MakePiece(White, Rook) {
		t.Fatalf("rook did not land on f1")
	}
	if p.PieceAt(h1) != PieceNone {
		t.Fatalf("rook's origin square still occupied")
	}
	if p.Castling()&(CastleWhiteKingside|CastleWhiteQueenside) != 0 {
		t.Fatalf("white castling rights should be cleared after castling")
	}

	p.UnmakeMove()
	if p.PieceAt(e1) != MakePiece(White, King) || p.PieceAt(h1) != MakePiece(White, Rook) {
		t.Fatalf("unmake did not restore castle rook")
	}
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	p, err := NewFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	e5, _ := SquareFromAlgebraic("e5")
	d6, _ := SquareFromAlgebraic("d6")
	d5, _ := SquareFromAlgebraic("d5")
	m := EncodeMove(e5, d6, MakePiece(White, Pawn), WhitePawn, MoveFlags{Capture: true, EnPassant: true})

	snapshot := *p
	if ok := p.MakeMove(m); !ok {
		t.Fatalf("expected en-passant capture to be legal")
	}
	if p.PieceAt(d5) != PieceNone {
		t.Fatalf("captured pawn still present on d5")
	}
	if p.PieceAt(d6) != MakePiece(White, Pawn) {
		t.Fatalf("capturing pawn did not land on d6")
	}

	p.UnmakeMove()
	if *p != snapshot {
		t.Fatalf("en-passant unmake did not restore the position")
	}
}

func TestIsAttackedKnightAndSlider(t *testing.T) {
	p, err := NewFromFEN("4k3/8/8/8/3n4/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	e2, _ := SquareFromAlgebraic("e2")
	if !p.IsAttacked(e2, Black) {
		t.Fatalf("expected e2 to be attacked by the black knight on d4")
	}
	b1, _ := SquareFromAlgebraic("b1")
	if !p.IsAttacked(b1, White) {
		t.Fatalf("expected b1 to be attacked by the white rook on a1")
	}
	h8, _ := SquareFromAlgebraic("h8")
	if p.IsAttacked(h8, White) {
		t.Fatalf("h8 should not be attacked by anything in this position")
	}
}
