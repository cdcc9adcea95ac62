package model

import "sync"

// GridPool recycles grid storage between ticks. Grids handed out by Get are all dead.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	p := &GridPool{}
	p.pool.New = func() any { return NewGrid(0, 0) }
	return p
}

// Get returns a dead grid of the requested size, reusing storage when it can
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g
}

// Put clears g and hands it back to the pool. The caller must not touch g afterwards.
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}

// GridToPool returns a grid to the pool when pooling is enabled
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}
	pool.Put(grid)
}
