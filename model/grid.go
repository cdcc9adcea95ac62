package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-colorlife/palette"
)

// ErrMalformedGrid is returned for ragged or otherwise unusable cell matrices
var ErrMalformedGrid = errors.New("malformed grid")

// Grid represents the game board as rows of colored cells
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// FromCells copies a caller-owned cell matrix into a new grid, rejecting ragged rows
func FromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 {
		return NewGrid(0, 0), nil
	}

	cols := len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrMalformedGrid, "[FromCells] row %d has %d cells, expected %d", r, len(row), cols)
		}
	}

	g := NewGrid(len(cells), cols)
	for r, row := range cells {
		for c, cell := range row {
			g.cells[r][c] = cell.normalize()
		}
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) lies on the board
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Reset resets the grid to new dimensions, killing every cell
func (g *Grid) Reset(rows, cols int) {
	rows, cols = max(rows, 0), max(cols, 0)
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]Cell, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]Cell, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
}

// Set writes a cell. Out of bounds writes are ignored.
func (g *Grid) Set(row, col int, cell Cell) {
	if g.InBounds(row, col) {
		g.cells[row][col] = cell.normalize()
	}
}

// Get returns the cell at (row, col), or a dead cell when out of bounds
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[row][col]
}

// Toggle flips a cell. A cell brought to life gets a fresh color from hue.
func (g *Grid) Toggle(row, col int, hue palette.HueSource) {
	if !g.InBounds(row, col) {
		return
	}
	if g.cells[row][col].Alive {
		g.cells[row][col] = Dead
		return
	}
	g.cells[row][col] = Alive(palette.Fresh(hue))
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.rows, g.cols)
	for r := range g.rows {
		copy(next.cells[r], g.cells[r])
	}
	return next
}

// Cells returns a deep copy of the cell matrix
func (g *Grid) Cells() [][]Cell {
	return g.Clone().cells
}

// Equal reports whether two grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c].Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of liveness and color for every cell
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d;", g.rows, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			cell := g.cells[r][c]
			if cell.Alive {
				h.Write([]byte{1})
				h.Write([]byte(cell.Color))
			}
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
