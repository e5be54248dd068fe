package main

import (
	"os"

	"adventofcode2021/internal/days/day16"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day16.Puzzle); err != nil {
		os.Exit(1)
	}
}
