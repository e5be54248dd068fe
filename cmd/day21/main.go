package main

import (
	"os"

	"adventofcode2021/internal/days/day21"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day21.Puzzle); err != nil {
		os.Exit(1)
	}
}
