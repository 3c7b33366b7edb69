package grid

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrEmpty = errors.New("empty grid")

// Grid is a rectangular, row-major grid of cells.
type Grid[T any] struct {
	rows  [][]T
	width int
}

func Build[T any](width, height int, cell func(p Point) T) *Grid[T] {
	rows := make([][]T, height)
	for y := range rows {
		rows[y] = make([]T, width)
		for x := range rows[y] {
			rows[y][x] = cell(Point{x, y})
		}
	}
	return &Grid[T]{rows: rows, width: width}
}

// Parse reads one row per non-empty line, converting every rune with cell.
func Parse[T any](input string, cell func(r rune) (T, error)) (*Grid[T], error) {
	g := &Grid[T]{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			t, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", x, len(g.rows), err)
			}
			row = append(row, t)
		}
		if len(g.rows) > 0 && len(row) != g.width {
			return nil, fmt.Errorf("row %d has width %d, want %d", len(g.rows), len(row), g.width)
		}
		g.width = len(row)
		g.rows = append(g.rows, row)
	}
	if len(g.rows) == 0 {
		return nil, ErrEmpty
	}
	return g, nil
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return len(g.rows) }

func (g *Grid[T]) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < len(g.rows)
}

func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g.rows[p.Y][p.X], true
}

// Set stores t at p and returns the previous cell.
func (g *Grid[T]) Set(p Point, t T) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	old := g.rows[p.Y][p.X]
	g.rows[p.Y][p.X] = t
	return old, true
}

// Points yields every point in row-major order.
func (g *Grid[T]) Points() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y, row := range g.rows {
			for x, t := range row {
				if !yield(Point{x, y}, t) {
					return
				}
			}
		}
	}
}

func (g *Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g.rows {
		for _, t := range row {
			fmt.Fprint(&sb, t)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
