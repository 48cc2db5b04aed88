package geodes

import "fmt"

// State is a snapshot of stock and robot counts at one minute.
//
// Two States are the same search node exactly when all eight fields are equal;
// State is comparable and is used directly as the Frontier's map key.
type State struct {
	Ore      uint32
	Clay     uint32
	Obsidian uint32
	Geode    uint32

	OreRobots      uint32
	ClayRobots     uint32
	ObsidianRobots uint32
	GeodeRobots    uint32
}

// InitialState is the minute-zero state: one ore robot and nothing else.
func InitialState() State {
	return State{OreRobots: 1}
}

// Stock returns the amount of r on hand.
func (s State) Stock(r Resource) uint32 {
	switch r {
	case Ore:
		return s.Ore
	case Clay:
		return s.Clay
	case Obsidian:
		return s.Obsidian
	case Geode:
		return s.Geode
	}
	panic(fmt.Sprintf("geodes: unknown resource %d", int(r)))
}

// Robots returns the number of robots mining r.
func (s State) Robots(r Resource) uint32 {
	switch r {
	case Ore:
		return s.OreRobots
	case Clay:
		return s.ClayRobots
	case Obsidian:
		return s.ObsidianRobots
	case Geode:
		return s.GeodeRobots
	}
	panic(fmt.Sprintf("geodes: unknown resource %d", int(r)))
}

// CanAfford reports whether the current stock covers c.
func (s State) CanAfford(c Cost) bool {
	return s.Ore >= c[Ore] &&
		s.Clay >= c[Clay] &&
		s.Obsidian >= c[Obsidian] &&
		s.Geode >= c[Geode]
}

// Produce returns the state one minute later with no robot started.
func (s State) Produce() State {
	s.Ore += s.OreRobots
	s.Clay += s.ClayRobots
	s.Obsidian += s.ObsidianRobots
	s.Geode += s.GeodeRobots
	return s
}

func (s State) spend(c Cost) State {
	s.Ore -= c[Ore]
	s.Clay -= c[Clay]
	s.Obsidian -= c[Obsidian]
	s.Geode -= c[Geode]
	return s
}

func (s State) addRobot(r Resource) State {
	switch r {
	case Ore:
		s.OreRobots++
	case Clay:
		s.ClayRobots++
	case Obsidian:
		s.ObsidianRobots++
	case Geode:
		s.GeodeRobots++
	default:
		panic(fmt.Sprintf("geodes: unknown resource %d", int(r)))
	}
	return s
}

func (s State) String() string {
	return fmt.Sprintf("stock[%d %d %d %d] robots[%d %d %d %d]",
		s.Ore, s.Clay, s.Obsidian, s.Geode,
		s.OreRobots, s.ClayRobots, s.ObsidianRobots, s.GeodeRobots)
}
