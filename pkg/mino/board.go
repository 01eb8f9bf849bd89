package mino

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
)

// Board is the grid of settled blocks. Row 0 is the top row.
type Board struct {
	W int // Width
	H int // Height

	cells [][]bool
}

func NewBoard(w int, h int) *Board {
	b := &Board{W: w, H: h}
	b.Reset()

	return b
}

func (b *Board) InBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Filled reports whether a cell is occupied. Cells outside the board
// are always occupied.
func (b *Board) Filled(x int, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}

	return b.cells[y][x]
}

// Set fills a cell. It returns false when the cell is out of bounds or
// already filled.
func (b *Board) Set(x int, y int) bool {
	if !b.InBounds(x, y) || b.cells[y][x] {
		return false
	}

	b.cells[y][x] = true
	return true
}

func (b *Board) Reset() {
	b.cells = make([][]bool, b.H)
	for y := range b.cells {
		b.cells[y] = make([]bool, b.W)
	}
}

func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.H {
		return false
	}

	for x := 0; x < b.W; x++ {
		if !b.cells[y][x] {
			return false
		}
	}

	return true
}

// Solidify copies the occupied cells of p into the board. Nothing is
// changed when any cell is out of bounds or already filled.
func (b *Board) Solidify(p *Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) {
			return fmt.Errorf("failed to solidify %s at %s: %w", p.Kind, c, ErrOutOfBounds)
		} else if b.cells[c.Y][c.X] {
			return fmt.Errorf("failed to solidify %s at %s: %w", p.Kind, c, ErrOccupied)
		}
	}

	for _, c := range cells {
		b.cells[c.Y][c.X] = true
	}

	return nil
}

// ClearFull removes every full row and shifts the rows above it down.
// The returned indexes refer to the board before any row was removed,
// bottom row first.
func (b *Board) ClearFull() []int {
	var cleared []int
	if b.W == 0 {
		return nil
	}

	y := b.H - 1
	for y >= 0 {
		if !b.RowFull(y) {
			y--
			continue
		}

		cleared = append(cleared, y-len(cleared))

		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]bool, b.W)
	}

	return cleared
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [][]bool {
	c := make([][]bool, b.H)
	for y := range b.cells {
		c[y] = make([]bool, b.W)
		copy(c[y], b.cells[y])
	}

	return c
}

func (b *Board) Render() string {
	var s strings.Builder
	for y := 0; y < b.H; y++ {
		if y > 0 {
			s.WriteRune('\n')
		}
		for x := 0; x < b.W; x++ {
			if b.cells[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
	}

	return s.String()
}

// Collides reports whether shape placed at the given offset overlaps a
// filled cell or leaves the board on any side.
func Collides(b *Board, shape Shape, at Point) bool {
	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] && b.Filled(at.X+x, at.Y+y) {
				return true
			}
		}
	}

	return false
}
