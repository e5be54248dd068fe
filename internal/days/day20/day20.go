// Package day20 solves "Trench Map".
package day20

import (
	"context"
	"fmt"
	"strings"

	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 20,
	Title:  "Trench Map",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 35, Part2: 3351},
}

const sample = `
..#.#..#####.#.#.#.###.##.....###.##.#..###.####..#####..#....#..#..##..###..######.###...####..#..#####..##..#.#####...##.#.#..#.##..#.#......#.###.######.###.####...#.##.##..#..#..#####.....#.#....###..#.##......#.....#..#..#..##..#...##.######.####.####.#.#...#.......#..#.#.#...####.##.#......#..#...##.#.##..#...##.#.##..###.#......#.#.......#.#.#.####.###.##...#.....####.#..#..#.##.#....##..#.####....##...##..#...#......#.#.......#.......##..####..#...#.#.#...##..#.#..###..#####........#..####......#..#

#..#.
#....
##..#
..#..
..###
`

// Image is a finite window of lit pixels on an infinite background that is
// uniformly Background.
type Image struct {
	Algo       [512]bool
	Pixels     [][]bool
	Background bool
}

func parseRow(l string) ([]bool, error) {
	row := make([]bool, len(l))
	for i, c := range l {
		switch c {
		case '#':
			row[i] = true
		case '.':
		default:
			return nil, fmt.Errorf("invalid pixel %q", c)
		}
	}
	return row, nil
}

func ParseImage(in string) (*Image, error) {
	blocks := parse.Blocks(in)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("want algorithm and image, got %d blocks", len(blocks))
	}
	algo := strings.Join(blocks[0], "")
	if len(algo) != 512 {
		return nil, fmt.Errorf("algorithm has %d entries, want 512", len(algo))
	}
	img := &Image{}
	row, err := parseRow(algo)
	if err != nil {
		return nil, fmt.Errorf("algorithm: %w", err)
	}
	copy(img.Algo[:], row)
	for i, l := range blocks[1] {
		row, err := parseRow(l)
		if err != nil {
			return nil, fmt.Errorf("image line %d: %w", i+1, err)
		}
		if i > 0 && len(row) != len(img.Pixels[0]) {
			return nil, fmt.Errorf("image line %d: ragged width", i+1)
		}
		img.Pixels = append(img.Pixels, row)
	}
	return img, nil
}

func (img *Image) at(x, y int) bool {
	if y < 0 || y >= len(img.Pixels) || x < 0 || x >= len(img.Pixels[y]) {
		return img.Background
	}
	return img.Pixels[y][x]
}

// Enhance applies the algorithm once, growing the window by one pixel on
// every side.
func (img *Image) Enhance() {
	h, w := len(img.Pixels)+2, len(img.Pixels[0])+2
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := range next[y] {
			idx := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					idx <<= 1
					if img.at(x-1+dx, y-1+dy) {
						idx |= 1
					}
				}
			}
			next[y][x] = img.Algo[idx]
		}
	}
	if img.Background {
		img.Background = img.Algo[511]
	} else {
		img.Background = img.Algo[0]
	}
	img.Pixels = next
}

// Lit counts lit pixels. It fails when the background is lit, since the
// count is then infinite.
func (img *Image) Lit() (int, error) {
	if img.Background {
		return 0, fmt.Errorf("infinitely many pixels are lit")
	}
	n := 0
	for _, row := range img.Pixels {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	return n, nil
}

func (img *Image) String() string {
	var b strings.Builder
	for _, row := range img.Pixels {
		for _, p := range row {
			if p {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func Solve(_ context.Context, in string) (puzzle.Result, error) {
	img, err := ParseImage(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	var res puzzle.Result
	for step := 1; step <= 50; step++ {
		img.Enhance()
		switch step {
		case 2:
			if res.Part1, err = img.Lit(); err != nil {
				return puzzle.Result{}, err
			}
		case 50:
			if res.Part2, err = img.Lit(); err != nil {
				return puzzle.Result{}, err
			}
		}
	}
	return res, nil
}
