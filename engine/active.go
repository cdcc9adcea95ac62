package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/sheikhrachel/go-colorlife/coord"
	"github.com/sheikhrachel/go-colorlife/model"
)

// ActiveSet holds the keys of every alive cell in a grid
type ActiveSet = mapset.Set[coord.Key]

// ExtractActive scans the grid in row-major order and collects its alive cells.
// This is the only full-grid pass of a tick.
func ExtractActive(g *model.Grid) ActiveSet {
	active := mapset.New[coord.Key]()
	for r := range g.Rows() {
		for c := range g.Cols() {
			if g.Get(r, c).Alive {
				active.Put(coord.Encode(r, c))
			}
		}
	}
	return active
}
