package main

import (
	"os"

	"adventofcode2021/internal/days/day05"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day05.Puzzle); err != nil {
		os.Exit(1)
	}
}
