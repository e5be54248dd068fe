// Package day08 solves "Seven Segment Search".
package day08

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 8,
	Title:  "Seven Segment Search",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 26, Part2: 61229},
}

const sample = `
be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
`

// Pattern is a set of lit wires, bit i for wire 'a'+i.
type Pattern uint8

func parsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("invalid wire %q", c)
		}
		p |= 1 << (c - 'a')
	}
	return p, nil
}

func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// contains reports whether every wire of q is lit in p.
func (p Pattern) contains(q Pattern) bool { return p&q == q }

// Display is one line of notes: the ten unique patterns and the four output
// digits.
type Display struct {
	Patterns [10]Pattern
	Outputs  [4]Pattern
}

func ParseDisplay(s string) (Display, error) {
	var d Display
	left, right, ok := strings.Cut(s, "|")
	if !ok {
		return d, fmt.Errorf("expected |")
	}
	pats, outs := strings.Fields(left), strings.Fields(right)
	if len(pats) != len(d.Patterns) || len(outs) != len(d.Outputs) {
		return d, fmt.Errorf("got %d patterns and %d outputs", len(pats), len(outs))
	}
	for i, f := range pats {
		p, err := parsePattern(f)
		if err != nil {
			return d, err
		}
		d.Patterns[i] = p
	}
	for i, f := range outs {
		p, err := parsePattern(f)
		if err != nil {
			return d, err
		}
		d.Outputs[i] = p
	}
	return d, nil
}

// Easy counts outputs showing 1, 4, 7 or 8, the digits with a unique number
// of segments.
func (d Display) Easy() int {
	n := 0
	for _, o := range d.Outputs {
		switch o.Len() {
		case 2, 3, 4, 7:
			n++
		}
	}
	return n
}

// Decode works out which pattern is which digit and returns the output value.
func (d Display) Decode() (int, error) {
	var digit [10]Pattern
	for _, p := range d.Patterns {
		switch p.Len() {
		case 2:
			digit[1] = p
		case 3:
			digit[7] = p
		case 4:
			digit[4] = p
		case 7:
			digit[8] = p
		}
	}
	if digit[1] == 0 || digit[4] == 0 {
		return 0, fmt.Errorf("patterns for 1 and 4 are required")
	}
	for _, p := range d.Patterns {
		if p.Len() == 6 {
			switch {
			case p.contains(digit[4]):
				digit[9] = p
			case p.contains(digit[1]):
				digit[0] = p
			default:
				digit[6] = p
			}
		}
	}
	for _, p := range d.Patterns {
		if p.Len() == 5 {
			switch {
			case p.contains(digit[1]):
				digit[3] = p
			case digit[6].contains(p):
				digit[5] = p
			default:
				digit[2] = p
			}
		}
	}

	lookup := make(map[Pattern]int, len(digit))
	for n, p := range digit {
		if p == 0 {
			return 0, fmt.Errorf("digit %d unresolved", n)
		}
		if _, dup := lookup[p]; dup {
			return 0, fmt.Errorf("pattern for %d is ambiguous", n)
		}
		lookup[p] = n
	}

	value := 0
	for _, o := range d.Outputs {
		n, ok := lookup[o]
		if !ok {
			return 0, fmt.Errorf("output pattern %07b matches no digit", o)
		}
		value = value*10 + n
	}
	return value, nil
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	displays, err := parse.Each(in, ParseDisplay)
	if err != nil {
		return puzzle.Result{}, err
	}
	easy, total := 0, 0
	for i, d := range displays {
		easy += d.Easy()
		v, err := d.Decode()
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("display %d: %w", i+1, err)
		}
		total += v
	}
	return puzzle.Result{Part1: easy, Part2: total}, nil
}
