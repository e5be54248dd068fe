// Package day02 solves "Dive!".
package day02

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 2,
	Title:  "Dive!",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 150, Part2: 900},
}

const sample = `
forward 5
down 5
forward 8
up 3
down 8
forward 2
`

// Command is one parsed course instruction. Down and up are folded into a
// signed depth change.
type Command struct {
	Forward int
	Depth   int
}

func ParseCommand(s string) (Command, error) {
	dir, num, ok := strings.Cut(s, " ")
	if !ok {
		return Command{}, fmt.Errorf("no space in %q", s)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Command{}, err
	}
	switch dir {
	case "forward":
		return Command{Forward: n}, nil
	case "down":
		return Command{Depth: n}, nil
	case "up":
		return Command{Depth: -n}, nil
	}
	return Command{}, fmt.Errorf("unexpected direction %q", dir)
}

// Position is where the submarine ends up.
type Position struct {
	Horizontal, Depth, Aim int
}

// Simple treats up/down as direct depth changes.
func Simple(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		p.Horizontal += c.Forward
		p.Depth += c.Depth
	}
	return p
}

// Aimed treats up/down as changes to aim; forward moves along it.
func Aimed(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		p.Aim += c.Depth
		p.Horizontal += c.Forward
		p.Depth += p.Aim * c.Forward
	}
	return p
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	cmds, err := parse.Each(in, ParseCommand)
	if err != nil {
		return puzzle.Result{}, err
	}
	p1, p2 := Simple(cmds), Aimed(cmds)
	return puzzle.Result{
		Part1: p1.Horizontal * p1.Depth,
		Part2: p2.Horizontal * p2.Depth,
	}, nil
}
