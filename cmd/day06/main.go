package main

import (
	"os"

	"adventofcode2021/internal/days/day06"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day06.Puzzle); err != nil {
		os.Exit(1)
	}
}
