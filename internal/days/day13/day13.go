// Package day13 solves "Transparent Origami".
package day13

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 13,
	Title:  "Transparent Origami",
	Solve:  Solve,
	Sample: sample,
	Want: puzzle.Result{
		Part1: 17,
		Part2: "#####\n#...#\n#...#\n#...#\n#####\n",
	},
}

const sample = `
6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

type Point = geom.Pt[int]

// Fold is a fold line: along x when Vertical, otherwise along y.
type Fold struct {
	Vertical bool
	At       int
}

// Paper is the set of dots plus the folds still to apply.
type Paper struct {
	Dots  map[Point]struct{}
	Folds []Fold
}

func ParsePaper(in string) (*Paper, error) {
	blocks := parse.Blocks(in)
	if len(blocks) != 2 {
		return nil, errors.New("expected dots, a blank line, then folds")
	}
	p := &Paper{Dots: make(map[Point]struct{})}
	for _, l := range blocks[0] {
		xs, ys, ok := strings.Cut(l, ",")
		if !ok {
			return nil, fmt.Errorf("expected comma in %q", l)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("parsing x: %w", err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("parsing y: %w", err)
		}
		p.Dots[Point{X: x, Y: y}] = struct{}{}
	}
	for _, l := range blocks[1] {
		rest, ok := strings.CutPrefix(l, "fold along ")
		if !ok {
			return nil, fmt.Errorf("expected fold in %q", l)
		}
		axis, at, ok := strings.Cut(rest, "=")
		if !ok {
			return nil, fmt.Errorf("expected = in %q", l)
		}
		n, err := strconv.Atoi(at)
		if err != nil {
			return nil, fmt.Errorf("parsing fold: %w", err)
		}
		switch axis {
		case "x":
			p.Folds = append(p.Folds, Fold{Vertical: true, At: n})
		case "y":
			p.Folds = append(p.Folds, Fold{At: n})
		default:
			return nil, fmt.Errorf("expected x or y, found %q", axis)
		}
	}
	return p, nil
}

// Step applies the next fold, mirroring dots beyond the line onto the near
// side. It reports false when no folds remain.
func (p *Paper) Step() bool {
	if len(p.Folds) == 0 {
		return false
	}
	f := p.Folds[0]
	p.Folds = p.Folds[1:]
	folded := make(map[Point]struct{}, len(p.Dots))
	for d := range p.Dots {
		switch {
		case f.Vertical && d.X > f.At:
			d.X = 2*f.At - d.X
		case !f.Vertical && d.Y > f.At:
			d.Y = 2*f.At - d.Y
		}
		folded[d] = struct{}{}
	}
	p.Dots = folded
	return true
}

func (p *Paper) String() string {
	var maxX, maxY int
	for d := range p.Dots {
		maxX, maxY = max(maxX, d.X), max(maxY, d.Y)
	}
	var sb strings.Builder
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			if _, ok := p.Dots[Point{X: x, Y: y}]; ok {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	p, err := ParsePaper(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	if !p.Step() {
		return puzzle.Result{}, errors.New("no folds")
	}
	first := len(p.Dots)
	for p.Step() {
	}
	return puzzle.Result{Part1: first, Part2: p.String()}, nil
}
