package main

import (
	"os"

	"adventofcode2021/internal/days/day17"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day17.Puzzle); err != nil {
		os.Exit(1)
	}
}
