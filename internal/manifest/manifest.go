// Package manifest reads and extends days.hcl, the list of day binaries.
//
//	day "07" {
//	  title   = "The Treachery of Whales"
//	  package = "./cmd/day07"
//	  input   = "inputs/day07.txt"
//	}
package manifest

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"adventofcode2021/internal/puzzle"
	"adventofcode2021/internal/store"
)

// Entry is one day block.
type Entry struct {
	Day     string `hcl:"day,label"`
	Title   string `hcl:"title"`
	Package string `hcl:"package"`
	Input   string `hcl:"input"`
}

type file struct {
	Days []Entry `hcl:"day,block"`
}

// NewEntry returns the conventional entry for day n.
func NewEntry(n int, title string) Entry {
	label := fmt.Sprintf("%02d", n)
	return Entry{
		Day:     label,
		Title:   title,
		Package: "./cmd/day" + label,
		Input:   "inputs/day" + label + ".txt",
	}
}

// Number parses the block label.
func (e Entry) Number() (int, error) {
	n, err := strconv.Atoi(e.Day)
	if err != nil || len(e.Day) != 2 || n < puzzle.MinDay || n > puzzle.MaxDay {
		return 0, fmt.Errorf("day label %q is not 01..%02d", e.Day, puzzle.MaxDay)
	}
	return n, nil
}

// Name returns the package name, "day07" style.
func (e Entry) Name() string { return "day" + e.Day }

// Parse decodes manifest source. Entries come back sorted by day.
func Parse(src []byte, filename string) ([]Entry, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	var parsed file
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	seen := make(map[int]bool, len(parsed.Days))
	for _, e := range parsed.Days {
		n, err := e.Number()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if seen[n] {
			return nil, fmt.Errorf("%s: day %s listed twice", filename, e.Day)
		}
		seen[n] = true
	}
	sort.Slice(parsed.Days, func(i, j int) bool { return parsed.Days[i].Day < parsed.Days[j].Day })
	return parsed.Days, nil
}

// Load reads the manifest at path. A missing file is an empty manifest.
func Load(path string) ([]Entry, error) {
	b, err := store.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b, path)
}

// Append adds e to the manifest at path unless a block for the same day is
// already there. It reports whether the file changed.
func Append(path string, e Entry) (bool, error) {
	if _, err := e.Number(); err != nil {
		return false, err
	}
	src, err := store.ReadFile(path)
	if err != nil {
		return false, err
	}
	existing, err := Parse(src, path)
	if err != nil {
		return false, err
	}
	for _, x := range existing {
		if x.Day == e.Day {
			return false, nil
		}
	}

	f, diags := hclwrite.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return false, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}
	body := f.Body()
	if len(body.Blocks()) > 0 {
		body.AppendNewline()
	}
	block := body.AppendNewBlock("day", []string{e.Day}).Body()
	block.SetAttributeValue("title", cty.StringVal(e.Title))
	block.SetAttributeValue("package", cty.StringVal(e.Package))
	block.SetAttributeValue("input", cty.StringVal(e.Input))

	if err := store.WriteFile(path, hclwrite.Format(f.Bytes()), os.FileMode(0o644)); err != nil {
		return false, fmt.Errorf("writing manifest: %w", err)
	}
	return true, nil
}
