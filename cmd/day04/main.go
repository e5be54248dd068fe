package main

import (
	"os"

	"adventofcode2021/internal/days/day04"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day04.Puzzle); err != nil {
		os.Exit(1)
	}
}
