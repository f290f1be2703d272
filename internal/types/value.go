// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package types

// Value is a centipawn score, always from the perspective of the side to
// move at the point it is returned (negamax convention).
type Value int32

// MateScore is returned (minus ply) on a detected checkmate; MaxScore
// bounds the root search window and is larger than any non-mate
// evaluation can reach.
const (
	MateScore Value = 50000
	MaxScore  Value = 50000
	ValueDraw Value = 0
)

// IsMateScore reports whether v is within maxDepth plies of MateScore in
// absolute value - i.e. it encodes a forced mate rather than a material
// evaluation.
func IsMateScore(v Value, maxDepth int) bool {
	bound := MateScore - Value(maxDepth)
	return v >= bound || v <= -bound
}
