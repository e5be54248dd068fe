// Package day01 solves "Sonar Sweep".
package day01

import (
	"context"
	"strconv"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 1,
	Title:  "Sonar Sweep",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 7, Part2: 5},
}

const sample = `
199
200
208
210
200
207
240
269
260
263
`

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	depths, err := parse.Each(in, strconv.Atoi)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{
		Part1: Increases(depths, 1),
		Part2: Increases(depths, 3),
	}, nil
}

// Increases counts how often the sum of a window of the given width grows.
// Consecutive windows share all but one element, so only the entering and
// leaving depths need comparing.
func Increases(depths []int, window int) int {
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}
