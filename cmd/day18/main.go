package main

import (
	"os"

	"adventofcode2021/internal/days/day18"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day18.Puzzle); err != nil {
		os.Exit(1)
	}
}
