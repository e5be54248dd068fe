// Package day18 solves "Snailfish".
//
// Numbers are kept flat: the regular numbers in order, each with the depth of
// pairs enclosing it. Explode and split only ever touch neighbours in that
// order, so no tree is needed.
package day18

import (
	"context"
	"errors"
	"fmt"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 18,
	Title:  "Snailfish",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 4140, Part2: 3993},
}

const sample = `
[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
[[[5,[2,8]],4],[5,[[9,9],0]]]
[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
[[[[5,4],[7,7]],8],[[8,3],8]]
[[9,3],[[9,9],[6,[4,9]]]]
[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
`

type elem struct {
	Value int
	Depth int
}

// Number is a snailfish number in flattened form.
type Number []elem

func ParseNumber(s string) (Number, error) {
	var n Number
	pos, err := parseInto(s, 0, 0, &n)
	if err != nil {
		return nil, err
	}
	if pos != len(s) {
		return nil, fmt.Errorf("trailing input at %d in %q", pos, s)
	}
	if len(n) < 2 {
		return nil, fmt.Errorf("%q is not a pair", s)
	}
	return n, nil
}

// parseInto reads one element starting at pos and returns the position after it.
func parseInto(s string, pos, depth int, n *Number) (int, error) {
	if pos >= len(s) {
		return pos, errors.New("unexpected end of number")
	}
	c := s[pos]
	if c >= '0' && c <= '9' {
		v := 0
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			v = v*10 + int(s[pos]-'0')
			pos++
		}
		*n = append(*n, elem{Value: v, Depth: depth})
		return pos, nil
	}
	if c != '[' {
		return pos, fmt.Errorf("unexpected %q at %d", c, pos)
	}
	pos, err := parseInto(s, pos+1, depth+1, n)
	if err != nil {
		return pos, err
	}
	if pos >= len(s) || s[pos] != ',' {
		return pos, fmt.Errorf("expected ',' at %d", pos)
	}
	pos, err = parseInto(s, pos+1, depth+1, n)
	if err != nil {
		return pos, err
	}
	if pos >= len(s) || s[pos] != ']' {
		return pos, fmt.Errorf("expected ']' at %d", pos)
	}
	return pos + 1, nil
}

// explode handles the leftmost pair nested inside four pairs.
func (n Number) explode() (Number, bool) {
	for i := 0; i+1 < len(n); i++ {
		if n[i].Depth <= 4 || n[i].Depth != n[i+1].Depth {
			continue
		}
		if i > 0 {
			n[i-1].Value += n[i].Value
		}
		if i+2 < len(n) {
			n[i+2].Value += n[i+1].Value
		}
		n[i] = elem{Value: 0, Depth: n[i].Depth - 1}
		return append(n[:i+1], n[i+2:]...), true
	}
	return n, false
}

// split handles the leftmost regular number of 10 or more.
func (n Number) split() (Number, bool) {
	for i, e := range n {
		if e.Value < 10 {
			continue
		}
		l := elem{Value: e.Value / 2, Depth: e.Depth + 1}
		r := elem{Value: (e.Value + 1) / 2, Depth: e.Depth + 1}
		out := make(Number, 0, len(n)+1)
		out = append(out, n[:i]...)
		out = append(out, l, r)
		return append(out, n[i+1:]...), true
	}
	return n, false
}

// Reduce explodes, then splits, until neither applies.
func (n Number) Reduce() Number {
	for {
		var changed bool
		if n, changed = n.explode(); changed {
			continue
		}
		if n, changed = n.split(); !changed {
			return n
		}
	}
}

// Add returns the reduced sum [a,b]. Neither operand is modified.
func Add(a, b Number) Number {
	out := make(Number, 0, len(a)+len(b))
	for _, e := range a {
		out = append(out, elem{Value: e.Value, Depth: e.Depth + 1})
	}
	for _, e := range b {
		out = append(out, elem{Value: e.Value, Depth: e.Depth + 1})
	}
	return out.Reduce()
}

// Sum adds the numbers left to right.
func Sum(ns []Number) Number {
	total := ns[0]
	for _, n := range ns[1:] {
		total = Add(total, n)
	}
	return total
}

// Magnitude collapses the deepest sibling pairs into 3*left + 2*right until
// one value remains.
func (n Number) Magnitude() int {
	cur := append(Number(nil), n...)
	for len(cur) > 1 {
		deepest := 0
		for _, e := range cur {
			deepest = max(deepest, e.Depth)
		}
		next := cur[:0:0]
		for i := 0; i < len(cur); i++ {
			if cur[i].Depth == deepest && i+1 < len(cur) && cur[i+1].Depth == deepest {
				next = append(next, elem{Value: 3*cur[i].Value + 2*cur[i+1].Value, Depth: deepest - 1})
				i++
				continue
			}
			next = append(next, cur[i])
		}
		cur = next
	}
	return cur[0].Value
}

// LargestPair returns the largest magnitude of a+b over ordered pairs of
// distinct numbers.
func LargestPair(ns []Number) int {
	best := 0
	for i := range ns {
		for j := range ns {
			if i != j {
				best = max(best, Add(ns[i], ns[j]).Magnitude())
			}
		}
	}
	return best
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	ns, err := parse.Each(in, ParseNumber)
	if err != nil {
		return puzzle.Result{}, err
	}
	if len(ns) == 0 {
		return puzzle.Result{}, errors.New("no numbers")
	}
	return puzzle.Result{
		Part1: Sum(ns).Magnitude(),
		Part2: LargestPair(ns),
	}, nil
}
