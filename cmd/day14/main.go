package main

import (
	"os"

	"adventofcode2021/internal/days/day14"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day14.Puzzle); err != nil {
		os.Exit(1)
	}
}
