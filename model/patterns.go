package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-colorlife/palette"
	"github.com/sheikhrachel/go-colorlife/utils"
)

// Randomize fills the grid with living cells at the given density, each with a fresh color
func (g *Grid) Randomize(density float64, rng *rand.Rand, hue palette.HueSource) {
	for r := range g.rows {
		for c := range g.cols {
			if rng.Float64() < density {
				g.cells[r][c] = Alive(palette.Fresh(hue))
			} else {
				g.cells[r][c] = Dead
			}
		}
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int, rng *rand.Rand, hue palette.HueSource) {
	if g.rows == 0 || g.cols == 0 {
		return
	}
	for range count {
		g.Set(rng.IntN(g.rows), rng.IntN(g.cols), Alive(palette.Fresh(hue)))
	}
}

// stamp writes the alive positions of pattern at (startRow, startCol) in a single color
func (g *Grid) stamp(startRow, startCol int, pattern [][]bool, color string) {
	for r, row := range pattern {
		for c, alive := range row {
			if alive {
				g.Set(startRow+r, startCol+c, Alive(color))
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startRow, startCol int, hue palette.HueSource) {
	g.stamp(startRow, startCol, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}, palette.Fresh(hue))
}

// AddOscillator adds a horizontal blinker
func (g *Grid) AddOscillator(startRow, startCol int, hue palette.HueSource) {
	g.stamp(startRow, startCol, [][]bool{{true, true, true}}, palette.Fresh(hue))
}

// AddBlock adds a 2x2 still life
func (g *Grid) AddBlock(startRow, startCol int, hue palette.HueSource) {
	g.stamp(startRow, startCol, [][]bool{
		{true, true},
		{true, true},
	}, palette.Fresh(hue))
}

// ResetWithInterestingPatterns clears the grid, seeds it randomly and stamps a few known patterns
func (g *Grid) ResetWithInterestingPatterns(config utils.Config, rng *rand.Rand, hue palette.HueSource) {
	g.Randomize(config.RandomDensity, rng, hue)

	if g.rows < 10 || g.cols < 10 {
		return
	}

	g.AddGlider(5, 5, hue)
	if g.cols >= 20 && g.rows >= 15 {
		g.AddGlider(5, g.cols-8, hue)
	}

	g.AddOscillator(g.rows/4, g.cols/4, hue)
	if g.cols >= 30 {
		g.AddOscillator(3*g.rows/4, 3*g.cols/4, hue)
	}
}
