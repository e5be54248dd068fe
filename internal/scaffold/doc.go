// Package scaffold creates the skeleton for a new day.
//
// Generate writes, relative to the workspace root:
//
//   - inputs/dayNN.txt                  empty input placeholder
//   - internal/days/dayNN/dayNN.go      solution stub
//   - internal/days/dayNN/dayNN_test.go test stub
//   - cmd/dayNN/main.go                 standalone binary
//
// then appends a block to the manifest and regenerates
// internal/days/all/all.go from it. A day whose cmd/dayNN/main.go already
// exists is skipped untouched.
package scaffold
