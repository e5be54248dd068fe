package all

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/manifest"
	"adventofcode2021/internal/puzzle"
)

func TestDays_Register(t *testing.T) {
	reg, err := puzzle.NewRegistry(Days()...)
	require.NoError(t, err)
	require.Len(t, reg.Days(), puzzle.MaxDay)
}

func TestDays_MatchManifest(t *testing.T) {
	entries, err := manifest.Load("../../../days.hcl")
	require.NoError(t, err)

	days := Days()
	require.Len(t, days, len(entries))
	for i, e := range entries {
		n, err := e.Number()
		require.NoError(t, err)
		require.Equal(t, n, days[i].Number)
		require.Equal(t, e.Title, days[i].Title)
		require.Equal(t, e.Name(), days[i].Name())
	}
}

func TestDays_Samples(t *testing.T) {
	for _, d := range Days() {
		t.Run(d.Name(), func(t *testing.T) {
			t.Parallel()
			err := puzzle.Check(context.Background(), d)
			if errors.Is(err, puzzle.ErrNoSample) {
				t.Skip("no sample")
			}
			require.NoError(t, err)
		})
	}
}
