// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oskarsson/bitchess/internal/position"
	. "github.com/oskarsson/bitchess/internal/types"
)

// kiwipeteFEN and position3FEN are the two non-startpos positions from
// the published perft reference suites.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

func perftNodes(t *testing.T, fen string, depth int) uint64 {
	t.Helper()
	p, err := position.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("bad fen %q: %v", fen, err)
	}
	return Perft(p, depth).Nodes
}

func TestPerftStartpos(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281}
	for d, w := range want {
		depth := d + 1
		assert.Equal(t, w, perftNodes(t, position.StartFEN, depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	want := []uint64{48, 2039, 97862}
	for d, w := range want {
		depth := d + 1
		assert.Equal(t, w, perftNodes(t, kiwipeteFEN, depth), "depth %d", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	want := []uint64{14, 191, 2812, 43238}
	for d, w := range want {
		depth := d + 1
		assert.Equal(t, w, perftNodes(t, position3FEN, depth), "depth %d", depth)
	}
}

func TestPerftReportsPerRootMoveBreakdown(t *testing.T) {
	p := position.New()
	result := Perft(p, 2)
	assert.Equal(t, uint64(400), result.Nodes)

	var sum uint64
	for _, rm := range result.RootMoves {
		sum += rm.Nodes
	}
	assert.Equal(t, result.Nodes, sum)
	assert.Equal(t, 20, len(result.RootMoves), "every one of the 20 legal root moves should be reported")
}

func TestGenerateMovesOrderIsPieceTypeThenLsbSourceThenLsbTarget(t *testing.T) {
	p := position.New()
	moves := GeneratePseudoLegal(p)

	lastType := Pawn
	lastFrom := Square(-1)
	lastTo := Square(-1)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pt := m.Piece().Type()
		if pt != lastType {
			assert.True(t, pt > lastType, "piece type order regressed at move %d", i)
			lastType = pt
			lastFrom = -1
			lastTo = -1
			continue
		}
		if m.From() != lastFrom {
			assert.True(t, m.From() > lastFrom, "source square order regressed at move %d", i)
			lastFrom = m.From()
			lastTo = -1
		}
		assert.True(t, m.To() > lastTo, "target square order regressed at move %d", i)
		lastTo = m.To()
	}
}

func TestPawnCaptureAndPushFromOneSourceStayLsbOrdered(t *testing.T) {
	// The a2 pawn has an open push to a3 (16) and a capture to b3 (17):
	// the lower-indexed quiet push must come out before the capture even
	// though they land in different generation buckets.
	p, err := position.NewFromFEN("k7/8/8/8/8/1p6/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := GeneratePseudoLegal(p)

	var pawnMoves []string
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Piece().Type() == Pawn {
			pawnMoves = append(pawnMoves, m.String())
		}
	}
	assert.Equal(t, []string{"a2a3", "a2b3", "a2a4"}, pawnMoves)
}

func TestCastlingRequiresEmptyAndSafeSquares(t *testing.T) {
	p, err := position.NewFromFEN(kiwipeteFEN)
	if err != nil {
		t.Fatal(err)
	}
	moves := GeneratePseudoLegal(p)
	var kingside, queenside bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !m.IsCastle() {
			continue
		}
		switch m.To().String() {
		case "g1":
			kingside = true
		case "c1":
			queenside = true
		}
	}
	assert.True(t, kingside, "expected O-O to be generated in kiwipete")
	assert.True(t, queenside, "expected O-O-O to be generated in kiwipete")
}

func TestGenerateCapturesOnlyYieldsCaptures(t *testing.T) {
	p, err := position.NewFromFEN(kiwipeteFEN)
	if err != nil {
		t.Fatal(err)
	}
	moves := GenerateCaptures(p)
	assert.True(t, moves.Len() > 0)
	for i := 0; i < moves.Len(); i++ {
		assert.True(t, moves.At(i).IsCapture(), "GenerateCaptures produced a non-capture move")
	}
}

func TestBxh7CheckIsLegalAndCapturing(t *testing.T) {
	p, err := position.NewFromFEN("rnbq1rk1/ppp1nppp/4p3/b2pP3/3P4/2PB1N2/PP3PPP/RNBQK2R w KQ - 5 7")
	if err != nil {
		t.Fatal(err)
	}
	moves := GeneratePseudoLegal(p)
	var found bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Piece().Type() == Bishop && m.From().String() == "d3" && m.To().String() == "h7" {
			found = true
			assert.True(t, m.IsCapture())
			assert.True(t, p.MakeMove(m))
			assert.Equal(t, Black, p.Side())
			assert.False(t, p.IsAttacked(p.KingSquare(White), Black))
			p.UnmakeMove()
		}
	}
	assert.True(t, found, "expected Bxh7+ among pseudo-legal moves")
}
