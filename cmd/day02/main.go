package main

import (
	"os"

	"adventofcode2021/internal/days/day02"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day02.Puzzle); err != nil {
		os.Exit(1)
	}
}
