package mino

import (
	"strings"
)

type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// Kinds lists every kind a Source may produce.
var Kinds = []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a row-major occupancy matrix. Row 0 is the top row.
type Shape [][]bool

var shapes = map[Kind]Shape{
	KindI: shapeOf([]int{1, 1, 1, 1}),
	KindO: shapeOf([]int{1, 1}, []int{1, 1}),
	KindT: shapeOf([]int{0, 1, 0}, []int{1, 1, 1}),
	KindL: shapeOf([]int{1, 0, 0}, []int{1, 1, 1}),
	KindJ: shapeOf([]int{0, 0, 1}, []int{1, 1, 1}),
	KindS: shapeOf([]int{0, 1, 1}, []int{1, 1, 0}),
	KindZ: shapeOf([]int{1, 1, 0}, []int{0, 1, 1}),
}

func shapeOf(rows ...[]int) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, v := range row {
			s[y][x] = v != 0
		}
	}

	return s
}

// ShapeOf returns a copy of the spawn orientation of a kind.
func ShapeOf(k Kind) Shape {
	s, ok := shapes[k]
	if !ok {
		return nil
	}

	return s.Clone()
}

func (s Shape) Height() int { return len(s) }

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = make([]bool, len(s[y]))
		copy(c[y], s[y])
	}

	return c
}

// Cells returns the occupied cells relative to the top-left corner.
func (s Shape) Cells() []Point {
	var cells []Point
	for y := range s {
		for x := range s[y] {
			if s[y][x] {
				cells = append(cells, Point{x, y})
			}
		}
	}

	return cells
}

// Rotate returns the shape turned 90 degrees clockwise. An R x C shape
// becomes C x R.
func (s Shape) Rotate() Shape {
	r, c := s.Height(), s.Width()

	rotated := make(Shape, c)
	for x := 0; x < c; x++ {
		rotated[x] = make([]bool, r)
	}

	for y := 0; y < r; y++ {
		for x := 0; x < c; x++ {
			rotated[x][r-1-y] = s[y][x]
		}
	}

	return rotated
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for y := range s {
		if y > 0 {
			b.WriteRune('\n')
		}
		for x := range s[y] {
			if s[y][x] {
				b.WriteRune('#')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}
