// Package day05 solves "Hydrothermal Venture".
package day05

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 5,
	Title:  "Hydrothermal Venture",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 5, Part2: 12},
}

const sample = `
0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

type Point = geom.Pt[int]

// Line is a vent line. Only horizontal, vertical and 45 degree lines exist.
type Line struct {
	Start, End Point
}

func (l Line) Straight() bool { return l.Start.X == l.End.X || l.Start.Y == l.End.Y }

// Points returns every point the line covers, ends included.
func (l Line) Points() []Point {
	d := l.End.Sub(l.Start)
	step := Point{X: geom.Sign(d.X), Y: geom.Sign(d.Y)}
	n := max(geom.Abs(d.X), geom.Abs(d.Y))
	pts := make([]Point, 0, n+1)
	for p, i := l.Start, 0; i <= n; p, i = p.Add(step), i+1 {
		pts = append(pts, p)
	}
	return pts
}

func parsePoint(s string) (Point, error) {
	x, y, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("no comma in %q", s)
	}
	px, err := strconv.Atoi(x)
	if err != nil {
		return Point{}, err
	}
	py, err := strconv.Atoi(y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: px, Y: py}, nil
}

func ParseLine(s string) (Line, error) {
	a, b, ok := strings.Cut(s, "->")
	if !ok {
		return Line{}, fmt.Errorf("no arrow in %q", s)
	}
	start, err := parsePoint(a)
	if err != nil {
		return Line{}, err
	}
	end, err := parsePoint(b)
	if err != nil {
		return Line{}, err
	}
	l := Line{Start: start, End: end}
	d := end.Sub(start)
	if !l.Straight() && geom.Abs(d.X) != geom.Abs(d.Y) {
		return Line{}, fmt.Errorf("not a straight or diagonal line: %q", s)
	}
	return l, nil
}

// Overlaps counts points covered by at least two lines.
func Overlaps(lines []Line, diagonals bool) int {
	seen := make(map[Point]int)
	count := 0
	for _, l := range lines {
		if !diagonals && !l.Straight() {
			continue
		}
		for _, p := range l.Points() {
			seen[p]++
			if seen[p] == 2 {
				count++
			}
		}
	}
	return count
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	lines, err := parse.Each(in, ParseLine)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{
		Part1: Overlaps(lines, false),
		Part2: Overlaps(lines, true),
	}, nil
}
