package main

import (
	"os"

	"adventofcode2021/internal/days/day09"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day09.Puzzle); err != nil {
		os.Exit(1)
	}
}
