package main

import (
	"os"

	"adventofcode2021/internal/days/day15"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day15.Puzzle); err != nil {
		os.Exit(1)
	}
}
