// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// magicgen regenerates and verifies the magic-bitboard tables. Importing
// internal/attacks re-runs the deterministic fixed-seed magic search at
// package init, so every run of this tool derives the identical 128
// numbers; the tool then exhaustively verifies each square's table against
// the Hyperbola Quintessence reference (every one of the 2^k relevant
// occupancies, not just samples) and prints the numbers as Go source. The
// 128 verification jobs are independent, so they fan out across a worker
// pool.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/frankkopp/workerpool"

	"github.com/oskarsson/bitchess/internal/attacks"
	. "github.com/oskarsson/bitchess/internal/types"
)

// verifyJob exhaustively checks one square's magic entry: every subset of
// the relevant mask must hash to a table slot holding exactly the attack
// set the reference generator computes.
type verifyJob struct {
	id        string
	sq        Square
	magic     *attacks.Magic
	reference func(Square, Bitboard) Bitboard
	err       error
}

func (j *verifyJob) Id() string {
	return j.id
}

func (j *verifyJob) Run() error {
	size := 1 << (64 - j.magic.Shift)
	for i := 0; i < size; i++ {
		occ := attacks.OccupancyFromIndex(i, j.magic.Mask)
		idx := (uint64(occ) * j.magic.Number) >> j.magic.Shift
		if j.magic.Attacks[idx] != j.reference(j.sq, occ) {
			j.err = fmt.Errorf("%s: occupancy %d maps to a wrong attack set", j.id, i)
			return j.err
		}
	}
	return nil
}

func main() {
	pool := workerpool.NewWorkerPool(runtime.NumCPU(), 128, true)

	jobs := make([]*verifyJob, 0, 128)
	for sq := Square(0); sq < 64; sq++ {
		jobs = append(jobs,
			&verifyJob{
				id:        fmt.Sprintf("rook %s", sq),
				sq:        sq,
				magic:     &attacks.RookMagics[sq],
				reference: attacks.ReferenceRookAttacks,
			},
			&verifyJob{
				id:        fmt.Sprintf("bishop %s", sq),
				sq:        sq,
				magic:     &attacks.BishopMagics[sq],
				reference: attacks.ReferenceBishopAttacks,
			})
	}
	for _, j := range jobs {
		if err := pool.QueueJob(j); err != nil {
			fmt.Fprintln(os.Stderr, "magicgen: queue:", err)
			os.Exit(1)
		}
	}
	pool.Close()

	failed := 0
	for {
		job, done := pool.GetFinishedWait()
		if done {
			break
		}
		if v, ok := job.(*verifyJob); ok && v.err != nil {
			fmt.Fprintln(os.Stderr, "magicgen:", v.err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}

	printTable("rookMagicNumbers", &attacks.RookMagics)
	printTable("bishopMagicNumbers", &attacks.BishopMagics)
	fmt.Println("// all 128 magic tables verified against the reference generator")
}

func printTable(name string, magics *[64]attacks.Magic) {
	fmt.Printf("var %s = [64]uint64{\n", name)
	for rank := 0; rank < 8; rank++ {
		fmt.Print("\t")
		for file := 0; file < 8; file++ {
			fmt.Printf("0x%016x, ", magics[rank*8+file].Number)
		}
		fmt.Println()
	}
	fmt.Println("}")
}
