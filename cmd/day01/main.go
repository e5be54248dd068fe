package main

import (
	"os"

	"adventofcode2021/internal/days/day01"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day01.Puzzle); err != nil {
		os.Exit(1)
	}
}
