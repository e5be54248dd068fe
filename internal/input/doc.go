// Package input loads puzzle input files.
//
// Files are decoded through a BOM-sniffing transformer so inputs saved by
// editors as UTF-8-with-BOM or UTF-16 read the same as plain UTF-8, and CRLF
// line endings are folded to LF. A short blake2b fingerprint is logged so a
// run can be matched to the input it used.
package input
