package main

import (
	"os"

	"adventofcode2021/internal/days/day25"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day25.Puzzle); err != nil {
		os.Exit(1)
	}
}
