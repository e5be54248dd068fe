// Package commands defines the aoc CLI.
//
// Commands
//
//   - run     Solve one day against its input file
//   - check   Solve embedded samples and compare with the documented answers
//   - list    Show the manifest and which inputs are present
//   - watch   Re-solve a day whenever its input file changes
//   - new     Scaffold a new day (scripts/newday.sh wraps this)
//
// # Implementation
//
// The root command loads aoc.yaml, builds the zap logger and the day
// registry before any subcommand runs. The logger travels in the command
// context; it is flushed after the subcommand returns.
package commands
