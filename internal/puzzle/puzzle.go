package puzzle

import (
	"context"
	"fmt"
	"strings"
)

// MinDay and MaxDay bound the days of one event.
const (
	MinDay = 1
	MaxDay = 25
)

// Result holds the answers for one run. A nil Part2 means the day has no
// second part.
type Result struct {
	Part1 any
	Part2 any
}

// Lines renders r as "Part N: answer" lines. Multi-line answers start on
// their own line.
func (r Result) Lines() []string {
	var out []string
	for i, v := range []any{r.Part1, r.Part2} {
		if v == nil {
			continue
		}
		s := fmt.Sprint(v)
		if strings.Contains(s, "\n") {
			out = append(out, fmt.Sprintf("Part %d:\n%s", i+1, strings.TrimRight(s, "\n")))
			continue
		}
		out = append(out, fmt.Sprintf("Part %d: %s", i+1, s))
	}
	return out
}

// String joins Lines with newlines.
func (r Result) String() string { return strings.Join(r.Lines(), "\n") }

// Solver computes both answers from the full input text.
type Solver func(ctx context.Context, input string) (Result, error)

// Day is one puzzle and its solution.
type Day struct {
	Number int
	Title  string
	Solve  Solver

	// Sample is the worked example from the puzzle text and Want its
	// documented answers. Days without a sample leave both empty.
	Sample string
	Want   Result
}

// Name returns "day07" style names.
func (d Day) Name() string { return fmt.Sprintf("day%02d", d.Number) }

func (d Day) String() string { return fmt.Sprintf("Day %d: %s", d.Number, d.Title) }
