// Package day24 solves "Arithmetic Logic Unit".
//
// MONAD is 14 copies of one 18-instruction block that differ only in three
// constants. Each block either pushes w+B onto a base-26 stack held in z, or
// pops and requires the popped value plus A to equal w. Pairing pushes with
// pops gives one constraint w[j] = w[i] + B[i] + A[j] per pair, which fixes
// the largest and smallest accepted numbers directly.
package day24

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 24,
	Title:  "Arithmetic Logic Unit",
	Solve:  Solve,
}

const (
	Digits    = 14
	blockSize = 18
)

// block is the MONAD block; "?" marks the varying operand.
var block = []string{
	"inp w",
	"mul x 0",
	"add x z",
	"mod x 26",
	"div z ?",
	"add x ?",
	"eql x w",
	"eql x 0",
	"mul y 0",
	"add y 25",
	"mul y x",
	"add y 1",
	"mul z y",
	"mul y 0",
	"add y w",
	"add y ?",
	"mul y x",
	"add z y",
}

// Block holds the constants of one MONAD block.
type Block struct {
	Div, A, B int
}

// Pops reports whether the block removes the top of the stack.
func (b Block) Pops() bool { return b.Div == 26 }

// Analyze checks prog has the MONAD shape and extracts each block's
// constants.
func Analyze(prog []Instr) ([]Block, error) {
	if len(prog) != Digits*blockSize {
		return nil, fmt.Errorf("%d instructions, want %d", len(prog), Digits*blockSize)
	}
	blocks := make([]Block, Digits)
	for i := range blocks {
		var vars []int
		for k, want := range block {
			in := prog[i*blockSize+k]
			got := in.String()
			if want[len(want)-1] == '?' {
				if in.B.Reg >= 0 || got[:len(got)-len(in.B.String())] != want[:len(want)-1] {
					return nil, fmt.Errorf("block %d line %d: %q does not match %q", i, k+1, got, want)
				}
				vars = append(vars, in.B.Imm)
				continue
			}
			if got != want {
				return nil, fmt.Errorf("block %d line %d: %q does not match %q", i, k+1, got, want)
			}
		}
		b := Block{Div: vars[0], A: vars[1], B: vars[2]}
		if b.Div != 1 && b.Div != 26 {
			return nil, fmt.Errorf("block %d: div z %d", i, b.Div)
		}
		if !b.Pops() && b.A <= 9 {
			return nil, fmt.Errorf("block %d: push block with add x %d can match w", i, b.A)
		}
		blocks[i] = b
	}
	return blocks, nil
}

// Bounds returns the largest and smallest model numbers the blocks accept,
// as digit slices.
func Bounds(blocks []Block) (hi, lo []int, err error) {
	hi = make([]int, len(blocks))
	lo = make([]int, len(blocks))
	var stack []int
	for j, b := range blocks {
		if !b.Pops() {
			stack = append(stack, j)
			continue
		}
		if len(stack) == 0 {
			return nil, nil, fmt.Errorf("block %d pops an empty stack", j)
		}
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		diff := blocks[i].B + b.A
		if diff > 8 || diff < -8 {
			return nil, nil, fmt.Errorf("blocks %d and %d cannot agree (offset %d)", i, j, diff)
		}
		hi[i] = min(9, 9-diff)
		hi[j] = hi[i] + diff
		lo[i] = max(1, 1-diff)
		lo[j] = lo[i] + diff
	}
	if len(stack) != 0 {
		return nil, nil, fmt.Errorf("%d pushes never popped", len(stack))
	}
	return hi, lo, nil
}

func number(digits []int) int {
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}
	return n
}

// verify runs the model number through the program; MONAD accepts it when
// z ends at zero.
func verify(prog []Instr, digits []int) error {
	reg, err := Run(prog, digits)
	if err != nil {
		return err
	}
	if reg[3] != 0 {
		return fmt.Errorf("MONAD rejects %d (z=%d)", number(digits), reg[3])
	}
	return nil
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	prog, err := parse.Each(in, ParseInstr)
	if err != nil {
		return puzzle.Result{}, err
	}
	blocks, err := Analyze(prog)
	if err != nil {
		return puzzle.Result{}, err
	}
	hi, lo, err := Bounds(blocks)
	if err != nil {
		return puzzle.Result{}, err
	}
	for _, d := range [][]int{hi, lo} {
		if err := verify(prog, d); err != nil {
			return puzzle.Result{}, err
		}
	}
	logging.FromContext(ctx).Debug("Model numbers verified",
		zap.String("largest", strconv.Itoa(number(hi))), zap.String("smallest", strconv.Itoa(number(lo))))
	return puzzle.Result{Part1: number(hi), Part2: number(lo)}, nil
}
