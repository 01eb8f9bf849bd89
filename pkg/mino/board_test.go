package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int) {
	for x := 0; x < b.W; x++ {
		b.Set(x, y)
	}
}

func TestBoardFilled(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)

	for _, p := range []Point{{-1, 0}, {0, -1}, {DefaultWidth, 0}, {0, DefaultHeight}} {
		assert.True(t, b.Filled(p.X, p.Y), "expected out of range cell %s to be filled", p)
	}

	assert.False(t, b.Filled(0, 0), "expected empty cell on new board")

	require.True(t, b.Set(4, 7))
	assert.False(t, b.Set(4, 7), "set already filled cell")
	assert.False(t, b.Set(10, 7), "set out of bounds cell")
	assert.True(t, b.Filled(4, 7))

	b.Reset()
	assert.False(t, b.Filled(4, 7), "expected reset to empty the board")
}

func TestCollides(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)
	b.Set(5, 19)

	tests := []struct {
		name  string
		shape Shape
		at    Point
		want  bool
	}{
		{"spawn", ShapeOf(KindT), SpawnPoint, false},
		{"left wall", ShapeOf(KindO), Point{-1, 5}, true},
		{"right wall", ShapeOf(KindI), Point{7, 5}, true},
		{"right edge", ShapeOf(KindI), Point{6, 5}, false},
		{"floor", ShapeOf(KindO), Point{0, 19}, true},
		{"above top", ShapeOf(KindO), Point{0, -1}, true},
		{"occupied", ShapeOf(KindI), Point{2, 19}, true},
		{"empty corner of shape over block", ShapeOf(KindZ), Point{5, 18}, false},
		{"empty shape", Shape{}, Point{-5, -5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collides(b, tc.shape, tc.at))
		})
	}
}

func TestSolidify(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)

	p := NewPiece(KindT, Point{3, 3})
	require.NoError(t, b.Solidify(p))
	for _, c := range []Point{{4, 3}, {3, 4}, {4, 4}, {5, 4}} {
		assert.True(t, b.Filled(c.X, c.Y), "expected %s to be filled", c)
	}
	assert.False(t, b.Filled(3, 3), "expected empty shape cell to stay empty")

	assert.ErrorIs(t, b.Solidify(p), ErrOccupied)

	before := b.Render()
	assert.ErrorIs(t, b.Solidify(NewPiece(KindI, Point{8, 0})), ErrOutOfBounds)
	assert.Equal(t, before, b.Render(), "failed solidify modified the board")
}

func TestClearFull(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)

	fillRow(b, 19)
	fillRow(b, 18)
	b.Set(2, 17)
	fillRow(b, 16)
	b.Set(7, 15)

	assert.Equal(t, []int{19, 18, 16}, b.ClearFull())

	assert.True(t, b.Filled(2, 19), "expected partial row 17 to move to the bottom")
	assert.True(t, b.Filled(7, 18), "expected partial row 15 to move to row 18")
	for y := 0; y < 18; y++ {
		for x := 0; x < b.W; x++ {
			assert.False(t, b.Filled(x, y), "expected %s to be empty after clear", Point{x, y})
		}
	}

	assert.Empty(t, b.ClearFull())
}

func TestClearFullEntireBoard(t *testing.T) {
	b := NewBoard(4, 3)
	for y := 0; y < b.H; y++ {
		fillRow(b, y)
	}

	assert.Len(t, b.ClearFull(), 3)
	assert.Equal(t, "....\n....\n....", b.Render())
}

func TestParseCells(t *testing.T) {
	cells, err := ParseCells("0,19, 1,19,9,0")
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 19}, {1, 19}, {9, 0}}, cells)

	_, err = ParseCells("1,2,3")
	assert.ErrorIs(t, err, ErrOddCoordinates)

	_, err = ParseCells("a,2")
	assert.Error(t, err)

	cells, err = ParseCells(" ")
	assert.NoError(t, err)
	assert.Nil(t, cells)

	b := NewBoard(DefaultWidth, DefaultHeight)
	assert.ErrorIs(t, b.Fill([]Point{{0, 20}}), ErrOutOfBounds)
}

func BenchmarkClearFull(b *testing.B) {
	board := NewBoard(DefaultWidth, DefaultHeight)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 16; y < board.H; y++ {
			fillRow(board, y)
		}

		board.ClearFull()
	}
}
