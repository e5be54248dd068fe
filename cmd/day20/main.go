package main

import (
	"os"

	"adventofcode2021/internal/days/day20"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day20.Puzzle); err != nil {
		os.Exit(1)
	}
}
