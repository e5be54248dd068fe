package main

import (
	"os"

	"adventofcode2021/internal/days/day19"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day19.Puzzle); err != nil {
		os.Exit(1)
	}
}
