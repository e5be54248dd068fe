package puzzle

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoSample is returned by Check for days without a worked example.
var ErrNoSample = errors.New("no sample")

// Check solves d's sample and compares it with the documented answers.
func Check(ctx context.Context, d Day) error {
	if strings.TrimSpace(d.Sample) == "" {
		return fmt.Errorf("%s: %w", d.Name(), ErrNoSample)
	}
	got, err := d.Solve(ctx, d.Sample)
	if err != nil {
		return fmt.Errorf("%s sample: %w", d.Name(), err)
	}
	if g, w := got.String(), d.Want.String(); g != w {
		return fmt.Errorf("%s sample: got\n%s\nwant\n%s", d.Name(), g, w)
	}
	return nil
}
