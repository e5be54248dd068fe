// Package puzzle defines what a day is and how a day becomes a binary.
//
// A Day pairs a solver with the worked sample from the puzzle text. The
// Registry indexes days by number for the umbrella CLI, Check replays a day's
// sample, and Command builds the cobra root command each cmd/dayNN binary
// executes.
package puzzle
