package main

import (
	"os"

	"adventofcode2021/internal/days/day03"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day03.Puzzle); err != nil {
		os.Exit(1)
	}
}
