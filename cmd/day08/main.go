package main

import (
	"os"

	"adventofcode2021/internal/days/day08"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day08.Puzzle); err != nil {
		os.Exit(1)
	}
}
