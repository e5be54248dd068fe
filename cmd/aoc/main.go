package main

import (
	"os"

	"adventofcode2021/cmd/aoc/commands"
	"adventofcode2021/internal/scaffold"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(scaffold.ExitCode(err))
	}
}
