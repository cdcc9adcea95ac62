package rules

// Rule is a life-like birth/survival rule indexed by alive-neighbor count (0..8)
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// Next reports whether a cell is alive in the next generation
func (r Rule) Next(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

An alive cell survives with 2 or 3 alive neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Conway.Next(neighbors, alive)
}
