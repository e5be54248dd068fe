// Package day19 solves "Beacon Scanner".
//
// Scanners are placed one at a time relative to scanner 0. A candidate is
// tried against an already placed scanner only when their beacon distance
// fingerprints share enough values, then under each of the 24 rotations the
// most common translation between beacon pairs is checked for 12 matches.
package day19

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 19,
	Title:  "Beacon Scanner",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 79, Part2: 3621},
}

const sample = `
--- scanner 0 ---
404,-588,-901
528,-643,409
-838,591,734
390,-675,-793
-537,-823,-458
-485,-357,347
-345,-311,381
-661,-816,-575
-876,649,763
-618,-824,-621
553,345,-567
474,580,667
-447,-329,318
-584,868,-557
544,-627,-890
564,392,-477
455,729,728
-892,524,684
-689,845,-530
423,-701,434
7,-33,-71
630,319,-379
443,580,662
-789,900,-551
459,-707,401

--- scanner 1 ---
686,422,578
605,423,415
515,917,-361
-336,658,858
95,138,22
-476,619,847
-340,-569,-846
567,-361,727
-460,603,-452
669,-402,600
729,430,532
-500,-761,534
-322,571,750
-466,-666,-811
-429,-592,574
-355,545,-477
703,-491,-529
-328,-685,520
413,935,-424
-391,539,-444
586,-435,557
-364,-763,-893
807,-499,-711
755,-354,-619
553,889,-390

--- scanner 2 ---
649,640,665
682,-795,504
-784,533,-524
-644,584,-595
-588,-843,648
-30,6,44
-674,560,763
500,723,-460
609,671,-379
-555,-800,653
-675,-892,-343
697,-426,-610
578,704,681
493,664,-388
-671,-858,530
-667,343,800
571,-461,-707
-138,-166,112
-889,563,-600
646,-828,498
640,759,510
-630,509,768
-681,-892,-333
673,-379,-804
-742,-814,-386
577,-820,562

--- scanner 3 ---
-589,542,597
605,-692,669
-500,565,-823
-660,373,557
-458,-679,-417
-488,449,543
-626,468,-788
338,-750,-386
528,-832,-391
562,-778,733
-938,-730,414
543,643,-506
-524,371,-870
407,773,750
-104,29,83
378,-903,-323
-778,-728,485
426,699,580
-438,-605,-362
-469,-447,-387
509,732,623
647,635,-688
-868,-804,481
614,-800,639
595,780,-596

--- scanner 4 ---
727,592,562
-293,-554,779
441,611,-461
-714,465,-776
-743,427,-804
-660,-479,-426
832,-632,460
927,-485,-438
408,393,-506
466,436,-512
110,16,151
-258,-428,682
-393,719,612
-211,-452,876
808,-476,-593
-575,615,604
-485,667,467
-680,325,-822
-627,-443,-432
872,-547,-609
833,512,582
807,604,487
839,-516,451
891,-625,532
-652,-548,-490
30,-46,-14
`

// MinOverlap is how many beacons two scanners must share to be aligned.
const MinOverlap = 12

type Vec = geom.Pt3[int]

// Matrix is a rotation with rows as output axes.
type Matrix [3][3]int

func (m Matrix) Apply(v Vec) Vec {
	return Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Matrix) det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Rotations are the 24 proper rotations of the cube: signed permutation
// matrices with determinant 1.
var Rotations = func() []Matrix {
	perms := [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	var out []Matrix
	for _, p := range perms {
		for signs := 0; signs < 8; signs++ {
			var m Matrix
			for row := 0; row < 3; row++ {
				s := 1
				if signs>>row&1 == 1 {
					s = -1
				}
				m[row][p[row]] = s
			}
			if m.det() == 1 {
				out = append(out, m)
			}
		}
	}
	return out
}()

type Scanner struct {
	ID      int
	Beacons []Vec
}

// fingerprint is the multiset of squared distances between beacon pairs,
// which rotation and translation leave unchanged.
func (s Scanner) fingerprint() map[int]int {
	fp := make(map[int]int)
	for i, a := range s.Beacons {
		for _, b := range s.Beacons[i+1:] {
			d := a.Sub(b)
			fp[d.X*d.X+d.Y*d.Y+d.Z*d.Z]++
		}
	}
	return fp
}

func sharedDistances(a, b map[int]int) int {
	n := 0
	for d, ca := range a {
		n += min(ca, b[d])
	}
	return n
}

func ParseScanners(in string) ([]Scanner, error) {
	var out []Scanner
	for _, block := range parse.Blocks(in) {
		var s Scanner
		if _, err := fmt.Sscanf(block[0], "--- scanner %d ---", &s.ID); err != nil {
			return nil, fmt.Errorf("scanner header %q: %w", block[0], err)
		}
		for _, l := range block[1:] {
			fields := strings.Split(l, ",")
			if len(fields) != 3 {
				return nil, fmt.Errorf("scanner %d: bad position %q", s.ID, l)
			}
			var xyz [3]int
			for i, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("scanner %d: %w", s.ID, err)
				}
				xyz[i] = n
			}
			s.Beacons = append(s.Beacons, Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no scanners")
	}
	return out, nil
}

// align finds the rotation and offset placing moving in fixed's frame.
func align(fixed, moving []Vec) (rotated []Vec, offset Vec, ok bool) {
	for _, r := range Rotations {
		rot := make([]Vec, len(moving))
		for i, b := range moving {
			rot[i] = r.Apply(b)
		}
		counts := make(map[Vec]int)
		for _, f := range fixed {
			for _, m := range rot {
				d := f.Sub(m)
				counts[d]++
				if counts[d] >= MinOverlap {
					for i := range rot {
						rot[i] = rot[i].Add(d)
					}
					return rot, d, true
				}
			}
		}
	}
	return nil, Vec{}, false
}

// Map is the result of aligning every scanner.
type Map struct {
	Beacons  map[Vec]struct{}
	Scanners []Vec // scanner positions, scanner 0 at the origin
}

// Assemble places every scanner relative to the first.
func Assemble(ctx context.Context, scanners []Scanner) (*Map, error) {
	log := logging.FromContext(ctx)
	n := len(scanners)
	fps := make([]map[int]int, n)
	for i, s := range scanners {
		fps[i] = s.fingerprint()
	}
	need := MinOverlap * (MinOverlap - 1) / 2

	placed := make([][]Vec, n) // beacons in scanner 0's frame
	pos := make([]Vec, n)
	placed[0] = scanners[0].Beacons
	done := map[int]bool{0: true}
	queue := []int{0}
	tried := make(map[[2]int]bool)

	for len(queue) > 0 {
		base := queue[0]
		queue = queue[1:]
		for i := range scanners {
			if done[i] || tried[[2]int{base, i}] {
				continue
			}
			tried[[2]int{base, i}] = true
			if sharedDistances(fps[base], fps[i]) < need {
				continue
			}
			beacons, offset, ok := align(placed[base], scanners[i].Beacons)
			if !ok {
				continue
			}
			log.Debug("Aligned scanner",
				zap.Int("scanner", scanners[i].ID), zap.Int("via", scanners[base].ID))
			placed[i], pos[i], done[i] = beacons, offset, true
			queue = append(queue, i)
		}
	}
	if len(done) != n {
		return nil, fmt.Errorf("aligned %d of %d scanners", len(done), n)
	}

	m := &Map{Beacons: make(map[Vec]struct{}), Scanners: pos}
	for _, bs := range placed {
		for _, b := range bs {
			m.Beacons[b] = struct{}{}
		}
	}
	return m, nil
}

// MaxDistance is the largest manhattan distance between two scanners.
func (m *Map) MaxDistance() int {
	best := 0
	for i, a := range m.Scanners {
		for _, b := range m.Scanners[i+1:] {
			best = max(best, a.Manhattan(b))
		}
	}
	return best
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	scanners, err := ParseScanners(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	m, err := Assemble(ctx, scanners)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{Part1: len(m.Beacons), Part2: m.MaxDistance()}, nil
}
