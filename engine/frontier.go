package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/sheikhrachel/go-colorlife/coord"
)

// Frontier holds the keys of every cell whose state may change this tick.
// Members are never negative but may lie past the grid's far edges.
type Frontier = mapset.Set[coord.Key]

// ExpandFrontier returns every alive cell together with its 8 neighbors
func ExpandFrontier(active ActiveSet) Frontier {
	frontier := mapset.New[coord.Key]()
	active.Each(func(key coord.Key) {
		r, c := coord.MustDecode(key)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				nr, nc := r+dr, c+dc
				if nr >= 0 && nc >= 0 {
					frontier.Put(coord.Encode(nr, nc))
				}
			}
		}
	})
	return frontier
}
