package main

import (
	"os"

	"adventofcode2021/internal/days/day07"
	"adventofcode2021/internal/puzzle"
)

func main() {
	if err := puzzle.Execute(day07.Puzzle); err != nil {
		os.Exit(1)
	}
}
