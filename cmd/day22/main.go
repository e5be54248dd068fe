package main

import (
	"os"

	"adventofcode2021/internal/days/day22"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day22.Puzzle); err != nil {
		os.Exit(1)
	}
}
