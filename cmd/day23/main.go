package main

import (
	"os"

	"adventofcode2021/internal/days/day23"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day23.Puzzle); err != nil {
		os.Exit(1)
	}
}
