// Package day07 solves "The Treachery of Whales".
package day07

import (
	"context"
	"errors"
	"slices"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 7,
	Title:  "The Treachery of Whales",
	Solve:  Solve,
	Sample: "16,1,2,0,4,2,7,1,2,14\n",
	Want:   puzzle.Result{Part1: 37, Part2: 168},
}

// Linear returns the target and fuel when each step costs 1. The median
// minimises the sum of absolute distances.
func Linear(crabs []int) (pos, fuel int) {
	sorted := slices.Clone(crabs)
	slices.Sort(sorted)
	pos = sorted[len(sorted)/2]
	for _, c := range crabs {
		fuel += geom.Abs(c - pos)
	}
	return pos, fuel
}

func triangular(crabs []int, pos int) int {
	fuel := 0
	for _, c := range crabs {
		d := geom.Abs(c - pos)
		fuel += d * (d + 1) / 2
	}
	return fuel
}

// Triangular returns the target and fuel when the n-th step costs n. The
// optimum lies within half a unit of the mean.
func Triangular(crabs []int) (pos, fuel int) {
	sum := 0
	for _, c := range crabs {
		sum += c
	}
	mean := sum / len(crabs)
	pos, fuel = mean, triangular(crabs, mean)
	for _, p := range []int{mean - 1, mean + 1} {
		if f := triangular(crabs, p); f < fuel {
			pos, fuel = p, f
		}
	}
	return pos, fuel
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	crabs, err := parse.Ints(in, ",")
	if err != nil {
		return puzzle.Result{}, err
	}
	if len(crabs) == 0 {
		return puzzle.Result{}, errors.New("no crabs")
	}
	_, f1 := Linear(crabs)
	_, f2 := Triangular(crabs)
	return puzzle.Result{Part1: f1, Part2: f2}, nil
}
