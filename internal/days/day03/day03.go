// Package day03 solves "Binary Diagnostic".
package day03

import (
	"context"
	"errors"
	"fmt"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 3,
	Title:  "Binary Diagnostic",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 198, Part2: 230},
}

const sample = `
00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

// Report is the diagnostic report: fixed-width binary observations.
type Report struct {
	Width  int
	Values []uint
}

func ParseReport(in string) (Report, error) {
	lines := parse.Lines(in)
	if len(lines) == 0 {
		return Report{}, errors.New("empty report")
	}
	r := Report{Width: len(lines[0])}
	if r.Width > 63 {
		return Report{}, fmt.Errorf("observation width %d too large", r.Width)
	}
	for i, l := range lines {
		if len(l) != r.Width {
			return Report{}, fmt.Errorf("line %d: length %d != %d", i+1, len(l), r.Width)
		}
		var v uint
		for _, c := range l {
			v <<= 1
			switch c {
			case '0':
			case '1':
				v |= 1
			default:
				return Report{}, fmt.Errorf("line %d: unexpected char %q", i+1, c)
			}
		}
		r.Values = append(r.Values, v)
	}
	return r, nil
}

// ones counts how many values have bit set.
func ones(values []uint, bit int) int {
	n := 0
	for _, v := range values {
		if v>>bit&1 == 1 {
			n++
		}
	}
	return n
}

// Power returns gamma and epsilon. A column contributes to gamma when more
// than half of the observations have a one there.
func (r Report) Power() (gamma, epsilon uint) {
	for bit := r.Width - 1; bit >= 0; bit-- {
		gamma <<= 1
		epsilon <<= 1
		if ones(r.Values, bit) > len(r.Values)/2 {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma, epsilon
}

// Rating filters observations column by column until one remains. With
// mostCommon it keeps the majority bit (ties keep 1), otherwise the minority
// bit (ties keep 0).
func (r Report) Rating(mostCommon bool) (uint, error) {
	values := append([]uint(nil), r.Values...)
	for bit := r.Width - 1; bit >= 0 && len(values) > 1; bit-- {
		n := ones(values, bit)
		keep := uint(0)
		if (2*n >= len(values)) == mostCommon {
			keep = 1
		}
		kept := values[:0]
		for _, v := range values {
			if v>>bit&1 == keep {
				kept = append(kept, v)
			}
		}
		values = kept
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("rating filter left %d values", len(values))
	}
	return values[0], nil
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	r, err := ParseReport(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	g, e := r.Power()
	oxygen, err := r.Rating(true)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("oxygen: %w", err)
	}
	co2, err := r.Rating(false)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("co2: %w", err)
	}
	return puzzle.Result{
		Part1: int(g * e),
		Part2: int(oxygen * co2),
	}, nil
}
