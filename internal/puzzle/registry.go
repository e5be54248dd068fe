package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDay is returned by Lookup for days that were never registered.
var ErrUnknownDay = errors.New("unknown day")

// Registry indexes days by number.
type Registry struct {
	days map[int]Day
}

// NewRegistry registers days in order; it fails on the first invalid one.
func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds d. Numbers must be within MinDay..MaxDay and unique.
func (r *Registry) Register(d Day) error {
	if d.Number < MinDay || d.Number > MaxDay {
		return fmt.Errorf("day %d outside %d..%d", d.Number, MinDay, MaxDay)
	}
	if d.Solve == nil {
		return fmt.Errorf("day %d has no solver", d.Number)
	}
	if _, ok := r.days[d.Number]; ok {
		return fmt.Errorf("day %d registered twice", d.Number)
	}
	r.days[d.Number] = d
	return nil
}

// Lookup returns the day numbered n.
func (r *Registry) Lookup(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Days returns every registered day in ascending order.
func (r *Registry) Days() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
