// Package engine advances colored Game of Life grids one generation at a time.
//
// A tick runs as three phases: ExtractActive collects alive cells, ExpandFrontier
// grows them by one cell in every direction, and Step evaluates only those
// frontier cells. An Engine holds configuration only, so one value may be shared
// by concurrent callers as long as each owns the grid it passes in.
package engine

import (
	"github.com/sheikhrachel/go-colorlife/model"
	"github.com/sheikhrachel/go-colorlife/palette"
)

// Engine computes next generations
type Engine struct {
	hue  palette.HueSource
	pool *model.GridPool
}

// Option configures an Engine
type Option func(*Engine)

// WithHueSource sets where fresh colors for uncolored births come from
func WithHueSource(hue palette.HueSource) Option {
	return func(e *Engine) {
		if hue != nil {
			e.hue = hue
		}
	}
}

// WithPool allocates output grids from pool instead of the heap
func WithPool(pool *model.GridPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// New creates an Engine. Without options it draws random hues and allocates fresh grids.
func New(opts ...Option) *Engine {
	e := &Engine{hue: palette.RandomHue}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// ComputeNextGeneration returns the generation after g using the default Engine
func ComputeNextGeneration(g *model.Grid) *model.Grid {
	return defaultEngine.ComputeNextGeneration(g)
}

// ComputeNextGeneration returns the generation after g. g is left untouched.
func (e *Engine) ComputeNextGeneration(g *model.Grid) *model.Grid {
	next, _ := e.Tick(g)
	return next
}

// Tick is ComputeNextGeneration plus a summary of the work it did
func (e *Engine) Tick(g *model.Grid) (*model.Grid, TickInfo) {
	active := ExtractActive(g)
	frontier := ExpandFrontier(active)
	return step(g, active, frontier, e.hue, e.newGrid(g.Rows(), g.Cols()))
}

func (e *Engine) newGrid(rows, cols int) *model.Grid {
	if e.pool != nil {
		return e.pool.Get(rows, cols)
	}
	return model.NewGrid(rows, cols)
}
