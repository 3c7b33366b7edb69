// Package geode finds the most geodes a robot factory can crack before time
// runs out.
package geode

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/samber/lo"
)

type Blueprint struct {
	ID      int
	OreOre  int // Ore cost of an ore robot
	ClayOre int // Ore cost of a clay robot
	ObsOre  int // Ore cost of an obsidian robot
	ObsClay int // Clay cost of an obsidian robot
	GeoOre  int // Ore cost of a geode robot
	GeoObs  int // Obsidian cost of a geode robot
	maxOre  int // No robot costs more ore than this
}

// Parser reads blueprints in the puzzle's sentence form.
type Parser struct {
	re *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{re: regexp.MustCompile(
		`Blueprint (\d+): Each ore robot costs (\d+) ore\. Each clay robot costs (\d+) ore\. ` +
			`Each obsidian robot costs (\d+) ore and (\d+) clay\. Each geode robot costs (\d+) ore and (\d+) obsidian\.`,
	)}
}

func (p *Parser) Parse(line string) (Blueprint, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return Blueprint{}, fmt.Errorf("unrecognised blueprint %q", line)
	}
	nums := lo.Map(m[1:], func(s string, _ int) int {
		n, _ := strconv.Atoi(s) // Guaranteed digits by the pattern
		return n
	})
	b := Blueprint{
		ID:      nums[0],
		OreOre:  nums[1],
		ClayOre: nums[2],
		ObsOre:  nums[3],
		ObsClay: nums[4],
		GeoOre:  nums[5],
		GeoObs:  nums[6],
	}
	b.maxOre = lo.Max([]int{b.OreOre, b.ClayOre, b.ObsOre, b.GeoOre})
	return b, nil
}
