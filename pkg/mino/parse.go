package mino

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrOddCoordinates = errors.New("odd number of coordinates")

// ParseCells parses a list of cells in the form x,y,x,y,...
func ParseCells(s string) ([]Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("failed to parse cells %q: %w", s, ErrOddCoordinates)
	}

	cells := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cell x %q: %w", fields[i], err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cell y %q: %w", fields[i+1], err)
		}

		cells = append(cells, Point{x, y})
	}

	return cells, nil
}

// Fill sets every cell on the board.
func (b *Board) Fill(cells []Point) error {
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) {
			return fmt.Errorf("failed to fill %s: %w", c, ErrOutOfBounds)
		}

		b.cells[c.Y][c.X] = true
	}

	return nil
}
