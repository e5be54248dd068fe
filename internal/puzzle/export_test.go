package puzzle

import "adventofcode2021/internal/app"

// SetNewApp swaps the app constructor used by Command until the returned
// restore func runs.
func SetNewApp(f func(string, bool) (*app.App, error)) (restore func()) {
	old := newApp
	newApp = f
	return func() { newApp = old }
}
