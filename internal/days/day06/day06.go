// Package day06 solves "Lanternfish".
//
// Fish are counted per timer value rather than tracked individually; a step
// rotates the nine buckets and adds the spawning parents back at timer 6.
package day06

import (
	"context"
	"fmt"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 6,
	Title:  "Lanternfish",
	Solve:  Solve,
	Sample: "3,4,3,1,2\n",
	Want:   puzzle.Result{Part1: 5934, Part2: 26984457539},
}

const (
	refresh = 7 // days between spawns for a grown fish
	initial = 2 // extra days before a newborn first spawns
)

// School is the fish count per timer value.
type School [refresh + initial]int

func ParseSchool(in string) (School, error) {
	var s School
	timers, err := parse.Ints(in, ",")
	if err != nil {
		return s, err
	}
	for _, t := range timers {
		if t < 0 || t >= len(s) {
			return s, fmt.Errorf("timer %d out of range", t)
		}
		s[t]++
	}
	return s, nil
}

// Step advances the school by one day.
func (s *School) Step() {
	spawning := s[0]
	copy(s[:], s[1:])
	s[len(s)-1] = spawning
	s[refresh-1] += spawning
}

func (s *School) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	s, err := ParseSchool(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	for range 80 {
		s.Step()
	}
	after80 := s.Total()
	for range 256 - 80 {
		s.Step()
	}
	return puzzle.Result{Part1: after80, Part2: s.Total()}, nil
}
