// Package parse holds the line-oriented helpers most days share.
//
// Lines are trimmed and blank lines are skipped unless a helper says
// otherwise; errors name the 1-based line that failed.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines returns the trimmed, non-empty lines of s.
func Lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Each parses every non-empty line of s with fn.
func Each[T any](s string, fn func(string) (T, error)) ([]T, error) {
	lines := Lines(s)
	out := make([]T, 0, len(lines))
	for i, l := range lines {
		v, err := fn(l)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", i+1, l, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Ints parses integers separated by sep. Surrounding whitespace is ignored,
// as are empty fields when sep is whitespace-like.
func Ints(s, sep string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var fields []string
	if strings.TrimSpace(sep) == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Blocks splits s into groups of trimmed lines separated by blank lines.
func Blocks(s string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// DigitGrid parses rows of decimal digits. All rows must have equal width.
func DigitGrid(s string) ([][]int, error) {
	rows, err := Each(s, func(l string) ([]int, error) {
		row := make([]int, len(l))
		for i := 0; i < len(l); i++ {
			c := l[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("invalid digit %q", c)
			}
			row[i] = int(c - '0')
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: width %d, want %d", i+1, len(row), len(rows[0]))
		}
	}
	return rows, nil
}
