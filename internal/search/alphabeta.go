// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package search

import (
	"github.com/oskarsson/bitchess/internal/eval"
	"github.com/oskarsson/bitchess/internal/movegen"
	"github.com/oskarsson/bitchess/internal/moveslice"
	"github.com/oskarsson/bitchess/internal/position"
	. "github.com/oskarsson/bitchess/internal/types"
)

// negamax is the main alpha-beta recursion. At depth 0 it hands off to
// quiescence; a side to move in check gets one extra ply of depth so the
// search doesn't stop just short of resolving the check.
func (s *Search) negamax(p *position.Position, depth int, alpha, beta Value) Value {
	s.pvLength[s.ply] = s.ply

	if depth == 0 {
		return s.quiescence(p, alpha, beta)
	}
	if s.ply >= MaxPly-1 {
		return eval.Evaluate(p)
	}

	s.nodes++

	us := p.Side()
	inCheck := p.IsAttacked(p.KingSquare(us), us.Flip())
	if inCheck {
		depth++
	}

	legal := 0
	moves := movegen.GeneratePseudoLegal(p)
	s.orderMoves(p, moves)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !p.MakeMove(m) {
			continue
		}
		s.ply++
		score := -s.negamax(p, depth-1, -beta, -alpha)
		p.UnmakeMove()
		s.ply--
		legal++

		if score >= beta {
			if !m.IsCapture() {
				s.killerMoves[1][s.ply] = s.killerMoves[0][s.ply]
				s.killerMoves[0][s.ply] = m
			}
			return beta
		}

		if score > alpha {
			alpha = score
			if !m.IsCapture() {
				s.historyMoves[m.Piece()][m.To()] += Value(depth)
			}
			// collect the PV: this move followed by the child's line
			s.pvTable[s.ply][s.ply] = m
			for next := s.ply + 1; next < s.pvLength[s.ply+1]; next++ {
				s.pvTable[s.ply][next] = s.pvTable[s.ply+1][next]
			}
			s.pvLength[s.ply] = s.pvLength[s.ply+1]
		}
	}

	if legal == 0 {
		if inCheck {
			return -MateScore + Value(s.ply)
		}
		return ValueDraw
	}

	return alpha
}

// quiescence keeps searching captures past the nominal horizon until the
// position is quiet, using the static evaluation as a stand-pat bound.
func (s *Search) quiescence(p *position.Position, alpha, beta Value) Value {
	s.nodes++

	standPat := eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if s.ply >= s.qLimit {
		return alpha
	}

	moves := movegen.GenerateCaptures(p)
	s.orderMoves(p, moves)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !p.MakeMove(m) {
			continue
		}
		s.ply++
		score := -s.quiescence(p, -beta, -alpha)
		p.UnmakeMove()
		s.ply--

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// Move ordering: captures first by MVV-LVA above everything else, then the
// two killer slots for this ply, then quiet moves by their history score.
const (
	captureScoreBase = 10_000
	killerScore0     = 9_000
	killerScore1     = 8_000
)

func (s *Search) orderMoves(p *position.Position, moves *moveslice.MoveSlice) {
	moves.SortByKey(func(m Move) int {
		return s.scoreMove(p, m)
	})
}

func (s *Search) scoreMove(p *position.Position, m Move) int {
	if m.IsCapture() {
		victim := Pawn // en passant never captures anything else
		if !m.IsEnPassant() {
			victim = p.PieceAt(m.To()).Type()
		}
		return captureScoreBase + mvvLva(m.Piece().Type(), victim)
	}
	if m == s.killerMoves[0][s.ply] {
		return killerScore0
	}
	if m == s.killerMoves[1][s.ply] {
		return killerScore1
	}
	return int(s.historyMoves[m.Piece()][m.To()])
}

// mvvLva scores a capture by most-valuable victim first, breaking ties in
// favor of the least valuable attacker.
func mvvLva(attacker, victim PieceType) int {
	return 100*(1+int(victim)) + (5 - int(attacker))
}
