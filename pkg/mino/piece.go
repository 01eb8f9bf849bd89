package mino

import (
	"fmt"
)

// SpawnPoint is where new pieces enter the board.
var SpawnPoint = Point{3, 0}

type Piece struct {
	Point
	Shape Shape
	Kind  Kind
}

func NewPiece(k Kind, loc Point) *Piece {
	return &Piece{Point: loc, Shape: ShapeOf(k), Kind: k}
}

func (p *Piece) Move(dx int, dy int) {
	p.X += dx
	p.Y += dy
}

// Cells returns the occupied cells in board coordinates.
func (p *Piece) Cells() []Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.Point)
	}

	return cells
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s%s", p.Kind, p.Point)
}
