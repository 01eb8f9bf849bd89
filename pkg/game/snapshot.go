package game

import (
	"strings"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

type Cell int

const (
	CellEmpty Cell = iota
	CellBoard
	CellPiece
)

// Snapshot is a copy of the game state taken for rendering.
type Snapshot struct {
	W, H   int
	Board  [][]bool
	Piece  []mino.Point
	Kind   mino.Kind
	Paused bool

	piece map[mino.Point]bool
}

func (g *Game) Snapshot() Snapshot {
	g.Lock()
	defer g.Unlock()

	return g.SnapshotL()
}

func (g *Game) SnapshotL() Snapshot {
	s := Snapshot{
		W:      g.Board.W,
		H:      g.Board.H,
		Board:  g.Board.Cells(),
		Paused: g.Paused,
		piece:  make(map[mino.Point]bool)}

	if g.Piece != nil && !g.Paused {
		s.Piece = g.Piece.Cells()
		s.Kind = g.Piece.Kind

		for _, p := range s.Piece {
			s.piece[p] = true
		}
	}

	return s
}

// At returns what occupies a cell. The piece is drawn over the board.
func (s Snapshot) At(x int, y int) Cell {
	if s.piece[mino.Point{X: x, Y: y}] {
		return CellPiece
	} else if y >= 0 && y < len(s.Board) && x >= 0 && x < len(s.Board[y]) && s.Board[y][x] {
		return CellBoard
	}

	return CellEmpty
}

func (s Snapshot) String() string {
	var b strings.Builder
	for y := 0; y < s.H; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}
		for x := 0; x < s.W; x++ {
			switch s.At(x, y) {
			case CellPiece:
				b.WriteRune('@')
			case CellBoard:
				b.WriteRune('#')
			default:
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}
