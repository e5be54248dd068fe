package scaffold

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adventofcode2021/internal/puzzle"
)

// Exit codes returned by `aoc new` and scripts/newday.sh.
const (
	// ExitOK covers both a generated and a skipped day.
	ExitOK = 0

	// ExitFailure is any other failure, including a wrong argument count.
	ExitFailure = 1

	// ExitNotNumeric means the day argument is not a number.
	ExitNotNumeric = 2

	// ExitOutOfRange means the day is outside 1..25.
	ExitOutOfRange = 3
)

var (
	ErrNotNumeric = errors.New("day must be a number")
	ErrOutOfRange = fmt.Errorf("day must be within %d..%d", puzzle.MinDay, puzzle.MaxDay)
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for err: ExitOK for nil, the carried code
// for an ExitError, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ParseDay validates a day argument.
func ParseDay(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, &ExitError{
			Code:    ExitNotNumeric,
			Message: fmt.Sprintf("%v: %q", ErrNotNumeric, arg),
			Err:     ErrNotNumeric,
		}
	}
	if n < puzzle.MinDay || n > puzzle.MaxDay {
		return 0, &ExitError{
			Code:    ExitOutOfRange,
			Message: fmt.Sprintf("%v: %d", ErrOutOfRange, n),
			Err:     ErrOutOfRange,
		}
	}
	return n, nil
}
