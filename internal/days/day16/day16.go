// Package day16 solves "Packet Decoder": the BITS transmission format.
package day16

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 16,
	Title:  "Packet Decoder",
	Solve:  Solve,
	Sample: "8A004A801A8002F478\n",
	Want:   puzzle.Result{Part1: 16, Part2: 15},
}

// Packet type IDs.
const (
	TypeSum     = 0
	TypeProduct = 1
	TypeMin     = 2
	TypeMax     = 3
	TypeLiteral = 4
	TypeGreater = 5
	TypeLess    = 6
	TypeEqual   = 7
)

var errShort = errors.New("transmission ended early")

type Packet struct {
	Version int
	Type    int
	Value   int // literal packets only
	Sub     []Packet
}

// bitReader reads big-endian bit fields from a hex string.
type bitReader struct {
	bits []byte // one 0/1 per element
	pos  int
}

func newBitReader(hex string) (*bitReader, error) {
	r := &bitReader{bits: make([]byte, 0, 4*len(hex))}
	for _, c := range hex {
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = byte(c - '0')
		case c >= 'A' && c <= 'F':
			v = byte(c-'A') + 10
		case c >= 'a' && c <= 'f':
			v = byte(c-'a') + 10
		default:
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		for i := 3; i >= 0; i-- {
			r.bits = append(r.bits, v>>i&1)
		}
	}
	return r, nil
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.bits) {
		return 0, errShort
	}
	v := 0
	for _, b := range r.bits[r.pos : r.pos+n] {
		v = v<<1 | int(b)
	}
	r.pos += n
	return v, nil
}

func (r *bitReader) packet() (Packet, error) {
	var p Packet
	var err error
	if p.Version, err = r.read(3); err != nil {
		return p, err
	}
	if p.Type, err = r.read(3); err != nil {
		return p, err
	}

	if p.Type == TypeLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return p, err
			}
			p.Value = p.Value<<4 | group&0xF
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return p, err
	}
	if lengthType == 0 {
		length, err := r.read(15)
		if err != nil {
			return p, err
		}
		end := r.pos + length
		if end > len(r.bits) {
			return p, errShort
		}
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return p, err
			}
			p.Sub = append(p.Sub, sub)
		}
		if r.pos != end {
			return p, fmt.Errorf("sub-packets overran their length by %d bits", r.pos-end)
		}
		return p, nil
	}

	count, err := r.read(11)
	if err != nil {
		return p, err
	}
	for range count {
		sub, err := r.packet()
		if err != nil {
			return p, err
		}
		p.Sub = append(p.Sub, sub)
	}
	return p, nil
}

// Decode parses the outermost packet of a hex transmission. Trailing bits
// must be zero padding.
func Decode(hex string) (Packet, error) {
	r, err := newBitReader(strings.TrimSpace(hex))
	if err != nil {
		return Packet{}, err
	}
	p, err := r.packet()
	if err != nil {
		return Packet{}, err
	}
	for _, b := range r.bits[r.pos:] {
		if b != 0 {
			return Packet{}, errors.New("non-zero bits after outermost packet")
		}
	}
	return p, nil
}

// VersionSum adds the versions of p and every packet inside it.
func (p Packet) VersionSum() int {
	sum := p.Version
	for _, s := range p.Sub {
		sum += s.VersionSum()
	}
	return sum
}

// Eval computes the expression p encodes.
func (p Packet) Eval() (int, error) {
	if p.Type == TypeLiteral {
		return p.Value, nil
	}
	if len(p.Sub) == 0 {
		return 0, fmt.Errorf("operator %d without sub-packets", p.Type)
	}
	vals := make([]int, len(p.Sub))
	for i, s := range p.Sub {
		v, err := s.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch p.Type {
	case TypeSum:
		total := 0
		for _, v := range vals {
			total += v
		}
		return total, nil
	case TypeProduct:
		total := 1
		for _, v := range vals {
			total *= v
		}
		return total, nil
	case TypeMin:
		return slices.Min(vals), nil
	case TypeMax:
		return slices.Max(vals), nil
	}

	if len(vals) != 2 {
		return 0, fmt.Errorf("comparison %d needs 2 sub-packets, got %d", p.Type, len(vals))
	}
	var ok bool
	switch p.Type {
	case TypeGreater:
		ok = vals[0] > vals[1]
	case TypeLess:
		ok = vals[0] < vals[1]
	case TypeEqual:
		ok = vals[0] == vals[1]
	default:
		return 0, fmt.Errorf("unknown packet type %d", p.Type)
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}

// String renders packets as P<version>:L<value> or P<version>:O<type>:[...].
func (p Packet) String() string {
	if p.Type == TypeLiteral {
		return fmt.Sprintf("P%d:L%d", p.Version, p.Value)
	}
	subs := make([]string, len(p.Sub))
	for i, s := range p.Sub {
		subs[i] = s.String()
	}
	return fmt.Sprintf("P%d:O%d:[%s]", p.Version, p.Type, strings.Join(subs, ","))
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	p, err := Decode(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	v, err := p.Eval()
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Result{Part1: p.VersionSum(), Part2: v}, nil
}
