// Package day04 solves "Giant Squid": bingo against a squid.
package day04

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 4,
	Title:  "Giant Squid",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 4512, Part2: 1924},
}

const sample = `
7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

const size = 5

type Board struct {
	values  [size][size]int
	crossed [size][size]bool
	won     bool
}

func parseBoard(lines []string) (*Board, error) {
	if len(lines) != size {
		return nil, fmt.Errorf("board has %d rows, want %d", len(lines), size)
	}
	b := &Board{}
	for i, l := range lines {
		ns, err := parse.Ints(l, " ")
		if err != nil {
			return nil, err
		}
		if len(ns) != size {
			return nil, fmt.Errorf("board row %q has %d values, want %d", l, len(ns), size)
		}
		copy(b.values[i][:], ns)
	}
	return b, nil
}

// Mark crosses n off the board and reports whether the board has a full row
// or column afterwards.
func (b *Board) Mark(n int) bool {
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.values[r][c] == n {
				b.crossed[r][c] = true
			}
		}
	}
	return b.complete()
}

func (b *Board) complete() bool {
	for i := 0; i < size; i++ {
		row, col := true, true
		for j := 0; j < size; j++ {
			row = row && b.crossed[i][j]
			col = col && b.crossed[j][i]
		}
		if row || col {
			return true
		}
	}
	return false
}

// UnmarkedSum is the sum of every number not yet crossed off.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !b.crossed[r][c] {
				sum += b.values[r][c]
			}
		}
	}
	return sum
}

// Game is the drawn numbers and the boards in play.
type Game struct {
	Draws  []int
	Boards []*Board
}

func ParseGame(in string) (*Game, error) {
	blocks := parse.Blocks(in)
	if len(blocks) == 0 || len(blocks[0]) != 1 {
		return nil, errors.New("expected a single line of draws first")
	}
	draws, err := parse.Ints(blocks[0][0], ",")
	if err != nil {
		return nil, fmt.Errorf("draws: %w", err)
	}
	g := &Game{Draws: draws}
	for i, block := range blocks[1:] {
		b, err := parseBoard(block)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i, err)
		}
		g.Boards = append(g.Boards, b)
	}
	return g, nil
}

// Win is one board completing.
type Win struct {
	Board int
	Draw  int
	Score int
}

// Play draws every number and returns wins in the order they happened.
// Boards stop playing once they have won.
func (g *Game) Play() []Win {
	var wins []Win
	for _, n := range g.Draws {
		for i, b := range g.Boards {
			if b.won || !b.Mark(n) {
				continue
			}
			b.won = true
			wins = append(wins, Win{Board: i, Draw: n, Score: n * b.UnmarkedSum()})
		}
		if len(wins) == len(g.Boards) {
			break
		}
	}
	return wins
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	g, err := ParseGame(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	wins := g.Play()
	if len(wins) == 0 {
		return puzzle.Result{}, errors.New("no board won")
	}
	logging.FromContext(ctx).Debug("Bingo finished",
		zap.Int("boards", len(g.Boards)), zap.Int("winners", len(wins)))
	return puzzle.Result{
		Part1: wins[0].Score,
		Part2: wins[len(wins)-1].Score,
	}, nil
}
