package main

import (
	"os"

	"adventofcode2021/internal/days/day11"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day11.Puzzle); err != nil {
		os.Exit(1)
	}
}
