// Package day12 solves "Passage Pathing".
package day12

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 12,
	Title:  "Passage Pathing",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 10, Part2: 36},
}

const sample = `
start-A
start-b
A-c
A-b
b-d
A-end
b-end
`

const (
	start = "start"
	end   = "end"
)

// Caves is the undirected cave graph. Small caves are bits in a visited mask,
// so caves are interned to indices.
type Caves struct {
	names []string
	small []bool
	adj   [][]int
	index map[string]int
}

func (c *Caves) intern(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	i := len(c.names)
	c.index[name] = i
	c.names = append(c.names, name)
	c.small = append(c.small, unicode.IsLower(rune(name[0])))
	c.adj = append(c.adj, nil)
	return i
}

func ParseCaves(in string) (*Caves, error) {
	c := &Caves{index: make(map[string]int)}
	for i, l := range parse.Lines(in) {
		a, b, ok := strings.Cut(l, "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("line %d: expected a-b, got %q", i+1, l)
		}
		ia, ib := c.intern(a), c.intern(b)
		if !c.small[ia] && !c.small[ib] {
			return nil, fmt.Errorf("line %d: big caves %s and %s are adjacent", i+1, a, b)
		}
		c.adj[ia] = append(c.adj[ia], ib)
		c.adj[ib] = append(c.adj[ib], ia)
	}
	for _, name := range []string{start, end} {
		if _, ok := c.index[name]; !ok {
			return nil, fmt.Errorf("no %s cave", name)
		}
	}
	if len(c.names) > 64 {
		return nil, fmt.Errorf("%d caves, at most 64 supported", len(c.names))
	}
	return c, nil
}

type state struct {
	cave    int
	visited uint64
	twice   bool
}

// Paths counts paths from start to end visiting small caves at most once.
// With revisit, one small cave other than start and end may be visited twice.
func (c *Caves) Paths(revisit bool) int {
	memo := make(map[state]int)
	s, e := c.index[start], c.index[end]

	var walk func(st state) int
	walk = func(st state) int {
		if st.cave == e {
			return 1
		}
		if n, ok := memo[st]; ok {
			return n
		}
		total := 0
		for _, next := range c.adj[st.cave] {
			ns := state{cave: next, visited: st.visited, twice: st.twice}
			if c.small[next] {
				bit := uint64(1) << next
				if st.visited&bit != 0 {
					if !revisit || st.twice || next == s {
						continue
					}
					ns.twice = true
				}
				ns.visited |= bit
			}
			total += walk(ns)
		}
		memo[st] = total
		return total
	}
	return walk(state{cave: s, visited: 1 << s})
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	caves, err := ParseCaves(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{Part1: caves.Paths(false), Part2: caves.Paths(true)}, nil
}
