package main

import (
	"os"

	"adventofcode2021/internal/days/day10"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day10.Puzzle); err != nil {
		os.Exit(1)
	}
}
