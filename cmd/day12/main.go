package main

import (
	"os"

	"adventofcode2021/internal/days/day12"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day12.Puzzle); err != nil {
		os.Exit(1)
	}
}
