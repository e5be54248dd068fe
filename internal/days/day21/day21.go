// Package day21 solves "Dirac Dice".
package day21

import (
	"context"
	"fmt"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 21,
	Title:  "Dirac Dice",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 739785, Part2: 444356092776315},
}

const sample = `
Player 1 starting position: 4
Player 2 starting position: 8
`

// Start holds both players' starting squares, 1 through 10.
type Start [2]int

func ParseStart(in string) (Start, error) {
	lines := parse.Lines(in)
	if len(lines) != 2 {
		return Start{}, fmt.Errorf("want 2 players, got %d lines", len(lines))
	}
	var s Start
	for i, l := range lines {
		var player int
		if _, err := fmt.Sscanf(l, "Player %d starting position: %d", &player, &s[i]); err != nil {
			return Start{}, fmt.Errorf("line %d %q: %w", i+1, l, err)
		}
		if player != i+1 {
			return Start{}, fmt.Errorf("line %d: player %d out of order", i+1, player)
		}
		if s[i] < 1 || s[i] > 10 {
			return Start{}, fmt.Errorf("player %d: position %d not in 1..10", player, s[i])
		}
	}
	return s, nil
}

func move(pos, n int) int { return (pos+n-1)%10 + 1 }

// Deterministic plays with the 100-sided die that rolls 1, 2, 3, ... and
// returns the loser's score times the number of rolls.
func Deterministic(s Start) int {
	pos := s
	var score [2]int
	rolls := 0
	roll := func() int {
		rolls++
		return (rolls-1)%100 + 1
	}
	for p := 0; ; p = 1 - p {
		pos[p] = move(pos[p], roll()+roll()+roll())
		score[p] += pos[p]
		if score[p] >= 1000 {
			return score[1-p] * rolls
		}
	}
}

// splits is how many universes produce each sum of three Dirac rolls.
var splits = [...]struct{ sum, n int }{
	{3, 1}, {4, 3}, {5, 6}, {6, 7}, {7, 6}, {8, 3}, {9, 1},
}

type state struct {
	pos, other    int
	score, oScore int
}

// Dirac counts the universes each player wins in, playing to 21.
func Dirac(s Start) [2]int {
	memo := make(map[state][2]int)
	var wins func(st state) [2]int
	// wins[0] is for the player about to move.
	wins = func(st state) [2]int {
		if w, ok := memo[st]; ok {
			return w
		}
		var w [2]int
		for _, sp := range splits {
			pos := move(st.pos, sp.sum)
			score := st.score + pos
			if score >= 21 {
				w[0] += sp.n
				continue
			}
			sub := wins(state{pos: st.other, other: pos, score: st.oScore, oScore: score})
			w[0] += sp.n * sub[1]
			w[1] += sp.n * sub[0]
		}
		memo[st] = w
		return w
	}
	return wins(state{pos: s[0], other: s[1]})
}

func Solve(_ context.Context, in string) (puzzle.Result, error) {
	s, err := ParseStart(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	w := Dirac(s)
	return puzzle.Result{Part1: Deterministic(s), Part2: max(w[0], w[1])}, nil
}
