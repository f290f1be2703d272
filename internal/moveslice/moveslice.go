// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package moveslice provides helper functionality for slices of type
// Move: append, indexed access and an in-place ordering sort driven by an
// external score function (the 24-bit Move encoding leaves only 8 spare
// bits, too few to stash an ordering value in).
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/oskarsson/bitchess/internal/types"
)

// MoveSlice is a slice of Move with a few convenience methods.
type MoveSlice []Move

// NewMoveSlice creates a new, empty move slice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Clear empties the slice while retaining its underlying capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// SortByKey orders moves from highest key to lowest, using a stable
// insertion sort - moves come in small batches (rarely more than ~40) and
// are frequently near-sorted already thanks to killer/history ordering
// carried from the previous ply, which insertion sort exploits where a
// generic sort.Slice cannot.
func (ms *MoveSlice) SortByKey(key func(Move) int) {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		tmpKey := key(tmp)
		j := i
		for j > 0 && tmpKey > key((*ms)[j-1]) {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String renders the slice for debugging/logging.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveSlice: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
