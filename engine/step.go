package engine

import (
	"github.com/sheikhrachel/go-colorlife/coord"
	"github.com/sheikhrachel/go-colorlife/model"
	"github.com/sheikhrachel/go-colorlife/palette"
	"github.com/sheikhrachel/go-colorlife/rules"
)

// neighborOffsets is the fixed scan order. Color ties are broken by it.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// TickInfo describes the work done by one step
type TickInfo struct {
	ActiveCells  int
	FrontierSize int
	Evaluated    int
	Born         int
	Survived     int
	Died         int
}

// Step evaluates every in-bounds frontier cell against the active set and
// returns the next generation. The input grid is only read.
func Step(g *model.Grid, active ActiveSet, frontier Frontier, hue palette.HueSource) *model.Grid {
	next, _ := step(g, active, frontier, hue, model.NewGrid(g.Rows(), g.Cols()))
	return next
}

// step writes the next generation into next, which must be an all-dead grid
// of g's dimensions that shares no cells with g.
func step(g *model.Grid, active ActiveSet, frontier Frontier, hue palette.HueSource, next *model.Grid) (*model.Grid, TickInfo) {
	info := TickInfo{
		ActiveCells:  active.Size(),
		FrontierSize: frontier.Size(),
	}

	neighborColors := make([]string, 0, len(neighborOffsets))
	frontier.Each(func(key coord.Key) {
		r, c := coord.MustDecode(key)
		if !g.InBounds(r, c) {
			return
		}
		info.Evaluated++

		neighbors := 0
		neighborColors = neighborColors[:0]
		for _, off := range neighborOffsets {
			nr, nc := r+off[0], c+off[1]
			if !g.InBounds(nr, nc) || !active.Has(coord.Encode(nr, nc)) {
				continue
			}
			neighbors++
			if color := g.Get(nr, nc).Color; color != "" {
				neighborColors = append(neighborColors, color)
			}
		}

		alive := active.Has(key)
		if !rules.ApplyConwayRules(neighbors, alive) {
			return
		}

		if alive {
			info.Survived++
			next.Set(r, c, model.Alive(g.Get(r, c).Color))
			return
		}

		info.Born++
		color := rules.PluralityColor(neighborColors)
		if color == "" {
			color = palette.Fresh(hue)
		}
		next.Set(r, c, model.Alive(color))
	})

	info.Died = info.ActiveCells - info.Survived
	return next, info
}
