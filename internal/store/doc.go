// Package store writes generated workspace files.
//
// Writes go through a temp file in the target directory followed by a
// rename, so a failed run never leaves a half-written manifest or source
// file behind. Reads treat a missing file as empty.
package store
