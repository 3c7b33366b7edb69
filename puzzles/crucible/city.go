// Package crucible finds the cheapest route for a crucible that must not move
// too far, or too little, in a straight line.
package crucible

import (
	"fmt"

	"puzzlesearch/grid"
)

// Cost is the heat lost entering a block.
type Cost uint8

func ParseCost(r rune) (Cost, error) {
	if r < '1' || r > '9' {
		return 0, fmt.Errorf("invalid block cost %q", r)
	}
	return Cost(r - '0'), nil
}

func ParseMap(input string) (*grid.Grid[Cost], error) {
	return grid.Parse(input, ParseCost)
}

// Key identifies where a crucible is and how it can move next. The total cost
// is left out so cheaper and dearer arrivals collapse onto one key.
type Key struct {
	Pos       grid.Point
	Dir       grid.Dir
	Straights uint8
}

type State struct {
	Key       Key
	TotalCost int
}

// City searches from the top-left to the bottom-right block.
type City struct {
	blocks      *grid.Grid[Cost]
	minStraight uint8
	maxStraight uint8
	goal        grid.Point
	exhaustive  bool
}

func NewCity(blocks *grid.Grid[Cost], minStraight, maxStraight uint8) *City {
	return &City{
		blocks:      blocks,
		minStraight: minStraight,
		maxStraight: maxStraight,
		goal:        grid.Point{X: blocks.Width() - 1, Y: blocks.Height() - 1},
	}
}

func (c *City) next(s State, dir grid.Dir) (State, bool) {
	pos := s.Key.Pos.Add(dir.Diff())
	cost, ok := c.blocks.Get(pos)
	if !ok {
		return State{}, false
	}
	straights := uint8(1)
	if dir == s.Key.Dir {
		straights = s.Key.Straights + 1
	}
	return State{
		Key:       Key{Pos: pos, Dir: dir, Straights: straights},
		TotalCost: s.TotalCost + int(cost),
	}, true
}

func (c *City) InitialState() State {
	return State{Key: Key{Pos: grid.Point{}, Dir: grid.E}}
}

func (c *City) Successors(s State) []State {
	var dirs []grid.Dir
	switch {
	case s.Key.Straights == 0:
		// Only the start has no run; it may head east or south
		dirs = append(dirs, s.Key.Dir.TurnRight(), s.Key.Dir)
	default:
		if s.Key.Straights >= c.minStraight {
			dirs = append(dirs, s.Key.Dir.TurnLeft(), s.Key.Dir.TurnRight())
		}
		if s.Key.Straights < c.maxStraight {
			dirs = append(dirs, s.Key.Dir)
		}
	}

	res := make([]State, 0, len(dirs))
	for _, dir := range dirs {
		if next, ok := c.next(s, dir); ok {
			res = append(res, next)
		}
	}
	return res
}

func (c *City) Key(s State) Key {
	return s.Key
}

func (c *City) Value(s State) int {
	return -s.TotalCost
}

// ValueEstimate assumes every remaining block costs 1.
func (c *City) ValueEstimate(s State) int {
	return -s.TotalCost - s.Key.Pos.L1Dist(c.goal)
}

func (c *City) IsGoal(s State) bool {
	return s.Key.Pos == c.goal && s.Key.Straights >= c.minStraight
}

// BreakOnGoal holds because the estimate never rises along a path.
func (c *City) BreakOnGoal() bool {
	return !c.exhaustive
}
