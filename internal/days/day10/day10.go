// Package day10 solves "Syntax Scoring".
package day10

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 10,
	Title:  "Syntax Scoring",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 26397, Part2: 288957},
}

const sample = `
[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

var (
	closer = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore  = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completeScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// Check returns the first illegal closer of a corrupted line (0 if none) and
// the closers that would complete the line otherwise.
func Check(line string) (illegal rune, completion []rune, err error) {
	var stack []rune
	for _, c := range line {
		if want, ok := closer[c]; ok {
			stack = append(stack, want)
			continue
		}
		if _, ok := corruptScore[c]; !ok {
			return 0, nil, fmt.Errorf("unexpected character %q", c)
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return c, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(stack)
	return 0, stack, nil
}

// CompletionScore folds closers into the base-5 completion score.
func CompletionScore(closers []rune) int {
	score := 0
	for _, c := range closers {
		score = score*5 + completeScore[c]
	}
	return score
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	corrupt := 0
	var completions []int
	for i, line := range parse.Lines(in) {
		illegal, rest, err := Check(line)
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if illegal != 0 {
			corrupt += corruptScore[illegal]
			continue
		}
		if len(rest) > 0 {
			completions = append(completions, CompletionScore(rest))
		}
	}
	if len(completions) == 0 {
		return puzzle.Result{}, errors.New("no incomplete lines")
	}
	slices.Sort(completions)
	return puzzle.Result{
		Part1: corrupt,
		Part2: completions[len(completions)/2],
	}, nil
}
