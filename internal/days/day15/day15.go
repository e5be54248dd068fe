// Package day15 solves "Chiton".
package day15

import (
	"container/heap"
	"context"
	"errors"

	"go.uber.org/zap"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 15,
	Title:  "Chiton",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 40, Part2: 315},
}

const sample = `
1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

type Point = geom.Pt[int]

// Cave holds risk levels indexed [y][x].
type Cave [][]int

// Tile repeats the cave n times in each direction; each tile step right or
// down adds one to the risk, wrapping 9 back to 1.
func (c Cave) Tile(n int) Cave {
	h, w := len(c), len(c[0])
	out := make(Cave, h*n)
	for y := range out {
		out[y] = make([]int, w*n)
		for x := range out[y] {
			v := c[y%h][x%w] + y/h + x/w
			out[y][x] = (v-1)%9 + 1
		}
	}
	return out
}

type item struct {
	p    Point
	risk int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].risk < q[j].risk }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// LowestRisk runs Dijkstra from the top left to the bottom right corner.
// The starting position's risk is not counted.
func (c Cave) LowestRisk() int {
	h, w := len(c), len(c[0])
	goal := Point{X: w - 1, Y: h - 1}
	best := make([][]int, h)
	for y := range best {
		best[y] = make([]int, w)
		for x := range best[y] {
			best[y][x] = -1
		}
	}

	q := &queue{{}}
	best[0][0] = 0
	for q.Len() > 0 {
		cur := heap.Pop(q).(item)
		if cur.p == goal {
			return cur.risk
		}
		if cur.risk > best[cur.p.Y][cur.p.X] {
			continue
		}
		for _, n := range cur.p.Neighbors4() {
			if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h {
				continue
			}
			r := cur.risk + c[n.Y][n.X]
			if b := best[n.Y][n.X]; b >= 0 && b <= r {
				continue
			}
			best[n.Y][n.X] = r
			heap.Push(q, item{p: n, risk: r})
		}
	}
	return -1
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	grid, err := parse.DigitGrid(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	if len(grid) == 0 {
		return puzzle.Result{}, errors.New("empty cave")
	}
	c := Cave(grid)
	big := c.Tile(5)
	logging.FromContext(ctx).Debug("Searching tiled cave",
		zap.Int("width", len(big[0])), zap.Int("height", len(big)))
	return puzzle.Result{Part1: c.LowestRisk(), Part2: big.LowestRisk()}, nil
}
