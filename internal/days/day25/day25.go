// Package day25 solves "Sea Cucumber". There is no second part.
package day25

import (
	"context"
	"fmt"
	"strings"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 25,
	Title:  "Sea Cucumber",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 58},
}

const sample = `
v...>>.vv>
.vv>>.vv..
>>.>v>...v
>>v>>.>.v.
v>v.vv.v..
>.>>..v...
.vv..>.>v.
v.v..>>v.v
....v..v.>
`

// Floor is the sea floor, wrapping at both edges. Cells are '>', 'v' or '.'.
type Floor [][]byte

func ParseFloor(in string) (Floor, error) {
	lines := parse.Lines(in)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty floor")
	}
	f := make(Floor, len(lines))
	for y, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, fmt.Errorf("line %d: width %d, want %d", y+1, len(l), len(lines[0]))
		}
		if strings.Trim(l, ">v.") != "" {
			return nil, fmt.Errorf("line %d: unexpected cell in %q", y+1, l)
		}
		f[y] = []byte(l)
	}
	return f, nil
}

// herd moves every cucumber of kind c one cell by (dx, dy) where the target
// was empty at the start of the move, returning how many moved.
func (f Floor) herd(c byte, dx, dy int) int {
	h, w := len(f), len(f[0])
	type mv struct{ x, y, nx, ny int }
	var moves []mv
	for y, row := range f {
		for x, cell := range row {
			if cell != c {
				continue
			}
			nx, ny := (x+dx)%w, (y+dy)%h
			if f[ny][nx] == '.' {
				moves = append(moves, mv{x, y, nx, ny})
			}
		}
	}
	for _, m := range moves {
		f[m.y][m.x], f[m.ny][m.nx] = '.', c
	}
	return len(moves)
}

// Step moves the east-facing herd and then the south-facing herd. It
// reports whether anything moved.
func (f Floor) Step() bool {
	east := f.herd('>', 1, 0)
	south := f.herd('v', 0, 1)
	return east+south > 0
}

func (f Floor) String() string {
	var b strings.Builder
	for _, row := range f {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

func Solve(_ context.Context, in string) (puzzle.Result, error) {
	f, err := ParseFloor(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	steps := 1
	for f.Step() {
		steps++
	}
	return puzzle.Result{Part1: steps}, nil
}
