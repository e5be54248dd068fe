// Package app wires the pieces every binary needs before it can solve.
//
// It loads Config from an optional YAML file, builds the zap logger from it,
// and exposes both via App for the command layer.
package app
