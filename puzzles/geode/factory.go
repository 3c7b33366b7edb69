package geode

// State is the whole factory; it is also its own key.
type State struct {
	Ore, Clay, Obs, Geo                         int
	OreRobots, ClayRobots, ObsRobots, GeoRobots int
	Time                                        int
}

// build is what one minute of construction adds or spends.
type build struct {
	ore, clay, obs                              int
	oreRobots, clayRobots, obsRobots, geoRobots int
}

func initialState() State {
	return State{OreRobots: 1}
}

// tick collects from the existing robots and then adds whatever was built.
func (s State) tick(b build) State {
	return State{
		Ore:        s.Ore + s.OreRobots + b.ore,
		Clay:       s.Clay + s.ClayRobots + b.clay,
		Obs:        s.Obs + s.ObsRobots + b.obs,
		Geo:        s.Geo + s.GeoRobots,
		OreRobots:  s.OreRobots + b.oreRobots,
		ClayRobots: s.ClayRobots + b.clayRobots,
		ObsRobots:  s.ObsRobots + b.obsRobots,
		GeoRobots:  s.GeoRobots + b.geoRobots,
		Time:       s.Time + 1,
	}
}

// Factory runs one blueprint for a fixed number of minutes.
type Factory struct {
	bp      Blueprint
	maxTime int
}

func NewFactory(bp Blueprint, minutes int) *Factory {
	return &Factory{bp: bp, maxTime: minutes}
}

func (f *Factory) InitialState() State {
	return initialState()
}

// Successors never builds more robots of a kind than can be spent in a minute.
func (f *Factory) Successors(s State) []State {
	bp := f.bp
	res := []State{s.tick(build{})}
	if s.Ore >= bp.OreOre && s.OreRobots < bp.maxOre {
		res = append(res, s.tick(build{ore: -bp.OreOre, oreRobots: 1}))
	}
	if s.Ore >= bp.ClayOre && s.ClayRobots < bp.ObsClay {
		res = append(res, s.tick(build{ore: -bp.ClayOre, clayRobots: 1}))
	}
	if s.Ore >= bp.ObsOre && s.Clay >= bp.ObsClay && s.ObsRobots < bp.GeoObs {
		res = append(res, s.tick(build{ore: -bp.ObsOre, clay: -bp.ObsClay, obsRobots: 1}))
	}
	if s.Ore >= bp.GeoOre && s.Obs >= bp.GeoObs {
		res = append(res, s.tick(build{ore: -bp.GeoOre, obs: -bp.GeoObs, geoRobots: 1}))
	}
	return res
}

func (f *Factory) Key(s State) State {
	return s
}

func (f *Factory) Value(s State) int {
	return s.Geo
}

// ValueEstimate relaxes the rules: ore is free, a clay robot appears every
// minute, and obsidian and geode robots are built whenever their one
// non-ore input allows, all in the same minute.
func (f *Factory) ValueEstimate(s State) int {
	clay, clayRobots := s.Clay, s.ClayRobots
	obs, obsRobots := s.Obs, s.ObsRobots
	geo, geoRobots := s.Geo, s.GeoRobots

	for t := s.Time; t < f.maxTime; t++ {
		clay += clayRobots
		clayRobots++

		obs += obsRobots
		if clay >= f.bp.ObsClay {
			clay -= f.bp.ObsClay
			obsRobots++
		}

		geo += geoRobots
		if obs >= f.bp.GeoObs {
			obs -= f.bp.GeoObs
			geoRobots++
		}
	}
	return geo
}

func (f *Factory) IsGoal(s State) bool {
	return s.Time == f.maxTime
}
