// Package day23 solves "Amphipod".
//
// A burrow state is a string: the 11 hallway cells followed by each room
// from top to bottom. Dijkstra over those states finds the cheapest
// organisation.
package day23

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 23,
	Title:  "Amphipod",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 12521, Part2: 44169},
}

const sample = `
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const (
	hallLen = 11
	rooms   = 4
	empty   = '.'
)

// Folded are the rows hidden in the folded part of the diagram.
var Folded = []string{"DCBA", "DBAC"}

var energy = [rooms]int{1, 10, 100, 1000}

func door(room int) int { return 2 + 2*room }

func isDoor(h int) bool { return h >= 2 && h <= 8 && h%2 == 0 }

// Burrow is the starting arrangement: Rows[i][r] is the amphipod in row i
// (top first) of room r.
type Burrow struct {
	Rows []string
}

func ParseBurrow(in string) (Burrow, error) {
	var b Burrow
	lines := parse.Lines(in)
	if len(lines) < 2 || strings.Trim(lines[1], "#.") != "" || strings.Count(lines[1], ".") != hallLen {
		return Burrow{}, errors.New("missing empty hallway")
	}
	for _, l := range lines[2:] {
		row := strings.Map(func(r rune) rune {
			if r == '#' {
				return -1
			}
			return r
		}, l)
		if row == "" {
			continue
		}
		if len(row) != rooms || strings.Trim(row, "ABCD") != "" {
			return Burrow{}, fmt.Errorf("bad room row %q", l)
		}
		b.Rows = append(b.Rows, row)
	}
	if len(b.Rows) == 0 {
		return Burrow{}, errors.New("no rooms")
	}
	all := strings.Join(b.Rows, "")
	for _, c := range "ABCD" {
		if n := strings.Count(all, string(c)); n != len(b.Rows) {
			return Burrow{}, fmt.Errorf("%d amphipods of type %c, want %d", n, c, len(b.Rows))
		}
	}
	return b, nil
}

// Unfold inserts rows below the top row of every room.
func (b Burrow) Unfold(rows []string) Burrow {
	out := []string{b.Rows[0]}
	out = append(out, rows...)
	out = append(out, b.Rows[1:]...)
	return Burrow{Rows: out}
}

type search struct {
	depth int
}

func (s search) state(b Burrow) string {
	buf := []byte(strings.Repeat(string(empty), hallLen+rooms*s.depth))
	for i, row := range b.Rows {
		for r := 0; r < rooms; r++ {
			buf[s.cell(r, i)] = row[r]
		}
	}
	return string(buf)
}

func (s search) cell(room, row int) int { return hallLen + room*s.depth + row }

func (s search) done(st string) bool {
	for r := 0; r < rooms; r++ {
		for i := 0; i < s.depth; i++ {
			if st[s.cell(r, i)] != byte('A'+r) {
				return false
			}
		}
	}
	return true
}

// settled reports whether room r holds only its own type from row i down.
func (s search) settled(st string, r, i int) bool {
	for ; i < s.depth; i++ {
		if c := st[s.cell(r, i)]; c != empty && c != byte('A'+r) {
			return false
		}
	}
	return true
}

func (s search) hallClear(st string, from, to int) bool {
	lo, hi := min(from, to), max(from, to)
	for h := lo; h <= hi; h++ {
		if h != from && st[h] != empty {
			return false
		}
	}
	return true
}

type move struct {
	state string
	cost  int
}

func swap(st string, a, b int) string {
	buf := []byte(st)
	buf[a], buf[b] = buf[b], buf[a]
	return string(buf)
}

func (s search) moves(st string) []move {
	var out []move
	// Into a room. Doing this first is always optimal, so return early.
	for h := 0; h < hallLen; h++ {
		c := st[h]
		if c == empty {
			continue
		}
		r := int(c - 'A')
		if !s.settled(st, r, 0) || !s.hallClear(st, h, door(r)) {
			continue
		}
		i := s.depth - 1
		for st[s.cell(r, i)] != empty {
			i--
		}
		steps := geom.Abs(h-door(r)) + i + 1
		return []move{{swap(st, h, s.cell(r, i)), steps * energy[r]}}
	}
	// Out of a room into the hallway.
	for r := 0; r < rooms; r++ {
		i := 0
		for i < s.depth && st[s.cell(r, i)] == empty {
			i++
		}
		if i == s.depth || s.settled(st, r, i) {
			continue
		}
		c := st[s.cell(r, i)]
		for _, dir := range []int{-1, 1} {
			for h := door(r) + dir; h >= 0 && h < hallLen && st[h] == empty; h += dir {
				if isDoor(h) {
					continue
				}
				steps := geom.Abs(h-door(r)) + i + 1
				out = append(out, move{swap(st, h, s.cell(r, i)), steps * energy[c-'A']})
			}
		}
	}
	return out
}

type item struct {
	state string
	cost  int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// Organize returns the least energy needed to sort every amphipod into its
// room.
func Organize(ctx context.Context, b Burrow) (int, error) {
	s := search{depth: len(b.Rows)}
	start := s.state(b)
	best := map[string]int{start: 0}
	q := &queue{{state: start}}
	for q.Len() > 0 {
		cur := heap.Pop(q).(item)
		if s.done(cur.state) {
			logging.FromContext(ctx).Debug("Burrow organized",
				zap.Int("depth", s.depth), zap.Int("states", len(best)))
			return cur.cost, nil
		}
		if cur.cost > best[cur.state] {
			continue
		}
		for _, m := range s.moves(cur.state) {
			c := cur.cost + m.cost
			if old, ok := best[m.state]; ok && old <= c {
				continue
			}
			best[m.state] = c
			heap.Push(q, item{state: m.state, cost: c})
		}
	}
	return 0, errors.New("burrow cannot be organized")
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	b, err := ParseBurrow(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	p1, err := Organize(ctx, b)
	if err != nil {
		return puzzle.Result{}, err
	}
	p2, err := Organize(ctx, b.Unfold(Folded))
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{Part1: p1, Part2: p2}, nil
}
