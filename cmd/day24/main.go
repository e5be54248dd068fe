package main

import (
	"os"

	"adventofcode2021/internal/days/day24"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day24.Puzzle); err != nil {
		os.Exit(1)
	}
}
