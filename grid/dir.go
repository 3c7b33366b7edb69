package grid

type Dir uint8

const (
	N Dir = iota
	E
	S
	W
)

func Dirs() [4]Dir {
	return [4]Dir{N, E, S, W}
}

func (d Dir) TurnLeft() Dir {
	return (d + 3) % 4
}

func (d Dir) TurnRight() Dir {
	return (d + 1) % 4
}

func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Diff is the unit step in direction d, with y growing southwards.
func (d Dir) Diff() Point {
	switch d {
	case N:
		return Point{0, -1}
	case E:
		return Point{1, 0}
	case S:
		return Point{0, 1}
	case W:
		return Point{-1, 0}
	}
	panic("invalid direction")
}

func (d Dir) String() string {
	return [...]string{"N", "E", "S", "W"}[d]
}
