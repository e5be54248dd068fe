package main

import (
	"os"

	"adventofcode2021/internal/days/day13"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day13.Puzzle); err != nil {
		os.Exit(1)
	}
}
