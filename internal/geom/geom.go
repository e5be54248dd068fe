// Package geom has small generic integer point types.
package geom

import "golang.org/x/exp/constraints"

// Pt is a 2D integer point.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Pt3 is a 3D integer point.
type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

func (a Pt[T]) Add(b Pt[T]) Pt[T] { return Pt[T]{a.X + b.X, a.Y + b.Y} }
func (a Pt[T]) Sub(b Pt[T]) Pt[T] { return Pt[T]{a.X - b.X, a.Y - b.Y} }

// Manhattan returns the manhattan distance between a and b.
func (a Pt[T]) Manhattan(b Pt[T]) T { return Abs(a.X-b.X) + Abs(a.Y-b.Y) }

// Neighbors4 returns the orthogonal neighbours of a.
func (a Pt[T]) Neighbors4() [4]Pt[T] {
	return [4]Pt[T]{{a.X - 1, a.Y}, {a.X + 1, a.Y}, {a.X, a.Y - 1}, {a.X, a.Y + 1}}
}

// Neighbors8 returns the orthogonal and diagonal neighbours of a.
func (a Pt[T]) Neighbors8() [8]Pt[T] {
	return [8]Pt[T]{
		{a.X - 1, a.Y - 1}, {a.X, a.Y - 1}, {a.X + 1, a.Y - 1},
		{a.X - 1, a.Y}, {a.X + 1, a.Y},
		{a.X - 1, a.Y + 1}, {a.X, a.Y + 1}, {a.X + 1, a.Y + 1},
	}
}

func (a Pt3[T]) Add(b Pt3[T]) Pt3[T] { return Pt3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Pt3[T]) Sub(b Pt3[T]) Pt3[T] { return Pt3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Manhattan returns the manhattan distance between a and b.
func (a Pt3[T]) Manhattan(b Pt3[T]) T {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y) + Abs(a.Z-b.Z)
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
