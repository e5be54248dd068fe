// Package day17 solves "Trick Shot".
package day17

import (
	"context"
	"fmt"
	"strings"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 17,
	Title:  "Trick Shot",
	Solve:  Solve,
	Sample: "target area: x=20..30, y=-10..-5\n",
	Want:   puzzle.Result{Part1: 45, Part2: 112},
}

// Target is the inclusive trench area.
type Target struct {
	X0, X1, Y0, Y1 int
}

func ParseTarget(s string) (Target, error) {
	var t Target
	_, err := fmt.Sscanf(strings.TrimSpace(s), "target area: x=%d..%d, y=%d..%d", &t.X0, &t.X1, &t.Y0, &t.Y1)
	if err != nil {
		return t, fmt.Errorf("parsing target: %w", err)
	}
	if t.X0 > t.X1 {
		t.X0, t.X1 = t.X1, t.X0
	}
	if t.Y0 > t.Y1 {
		t.Y0, t.Y1 = t.Y1, t.Y0
	}
	if t.X0 <= 0 || t.Y1 >= 0 {
		return t, fmt.Errorf("target must lie right of and below the launcher")
	}
	return t, nil
}

// Launch fires a shot with initial velocity v and reports whether it lands
// in the target and the apex it reached.
func (t Target) Launch(v geom.Pt[int]) (hit bool, apex int) {
	var p geom.Pt[int]
	for p.X <= t.X1 && p.Y >= t.Y0 {
		p = p.Add(v)
		v.X -= geom.Sign(v.X)
		v.Y--
		apex = max(apex, p.Y)
		if p.X >= t.X0 && p.X <= t.X1 && p.Y >= t.Y0 && p.Y <= t.Y1 {
			return true, apex
		}
	}
	return false, apex
}

// Search tries every velocity that could reach the target in range: any
// faster horizontally overshoots on the first step, and upward shots come
// back through y=0 with speed -vy-1, so vy beyond -Y0 overshoots too.
func (t Target) Search() (best, count int) {
	for vx := 1; vx <= t.X1; vx++ {
		for vy := t.Y0; vy <= -t.Y0; vy++ {
			hit, apex := t.Launch(geom.Pt[int]{X: vx, Y: vy})
			if hit {
				count++
				best = max(best, apex)
			}
		}
	}
	return best, count
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	t, err := ParseTarget(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	best, count := t.Search()
	return puzzle.Result{Part1: best, Part2: count}, nil
}
