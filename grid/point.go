package grid

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// L1Dist is the Manhattan distance between p and other.
func (p Point) L1Dist(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Adj returns the four orthogonal neighbours of p.
func (p Point) Adj() [4]Point {
	return [4]Point{
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
		{p.X, p.Y - 1},
	}
}

// AdjDiag returns all eight neighbours of p.
func (p Point) AdjDiag() [8]Point {
	return [8]Point{
		{p.X - 1, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X - 1, p.Y + 1},
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X + 1, p.Y + 1},
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
