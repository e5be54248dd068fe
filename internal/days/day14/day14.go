// Package day14 solves "Extended Polymerization".
//
// Only pair counts are tracked; the polymer itself grows exponentially.
package day14

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 14,
	Title:  "Extended Polymerization",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 1588, Part2: 2188189693529},
}

const sample = `
NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
NC -> B
NB -> B
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
`

type pair [2]byte

type Formula struct {
	Template string
	Rules    map[pair]byte
}

func ParseFormula(in string) (*Formula, error) {
	blocks := parse.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, errors.New("expected template, blank line, rules")
	}
	f := &Formula{Template: blocks[0][0], Rules: make(map[pair]byte)}
	if len(f.Template) < 2 {
		return nil, fmt.Errorf("template %q too short", f.Template)
	}
	for _, l := range blocks[1] {
		from, to, ok := strings.Cut(l, " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return nil, fmt.Errorf("bad rule %q", l)
		}
		f.Rules[pair{from[0], from[1]}] = to[0]
	}
	return f, nil
}

// Expand applies one insertion step to a literal polymer.
func (f *Formula) Expand(polymer string) string {
	var sb strings.Builder
	for i := 0; i < len(polymer); i++ {
		sb.WriteByte(polymer[i])
		if i+1 < len(polymer) {
			if c, ok := f.Rules[pair{polymer[i], polymer[i+1]}]; ok {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// Score returns most common minus least common element count after steps.
func (f *Formula) Score(steps int) int {
	pairs := make(map[pair]int)
	for i := 0; i+1 < len(f.Template); i++ {
		pairs[pair{f.Template[i], f.Template[i+1]}]++
	}
	for range steps {
		next := make(map[pair]int, len(pairs))
		for p, n := range pairs {
			c, ok := f.Rules[p]
			if !ok {
				next[p] += n
				continue
			}
			next[pair{p[0], c}] += n
			next[pair{c, p[1]}] += n
		}
		pairs = next
	}

	// Every element is the first of exactly one pair, except the last one of
	// the template, which never moves.
	counts := make(map[byte]int)
	for p, n := range pairs {
		counts[p[0]] += n
	}
	counts[f.Template[len(f.Template)-1]]++

	lo, hi := -1, 0
	for _, n := range counts {
		hi = max(hi, n)
		if lo < 0 || n < lo {
			lo = n
		}
	}
	return hi - lo
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	f, err := ParseFormula(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{Part1: f.Score(10), Part2: f.Score(40)}, nil
}
