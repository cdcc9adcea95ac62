package model

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-colorlife/palette"
)

// CellWidth is the number of terminal columns per cell, keeping cells roughly square
const CellWidth = 2

var (
	styleEmpty     = tcell.StyleDefault
	styleUncolored = tcell.StyleDefault.Background(tcell.ColorWhite)
)

// TerminalRenderer paints grids onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer wraps an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Display draws the grid followed by one status line per entry in status
func (r *TerminalRenderer) Display(g *Grid, status ...string) {
	r.screen.Clear()

	for row := range g.rows {
		for col := range g.cols {
			style := cellStyle(g.cells[row][col])
			for i := range CellWidth {
				r.screen.SetContent(col*CellWidth+i, row, ' ', nil, style)
			}
		}
	}

	for i, line := range status {
		r.drawText(0, g.rows+i, line)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		x++
	}
}

// cellStyle maps a cell to its background color. Alive cells whose color
// cannot be parsed are drawn white.
func cellStyle(cell Cell) tcell.Style {
	if !cell.Alive {
		return styleEmpty
	}
	red, green, blue, ok := palette.ToRGB(cell.Color)
	if !ok {
		return styleUncolored
	}
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
}
