package model

// Cell is a single board position. Dead cells never carry a color.
type Cell struct {
	Alive bool   `json:"alive"`
	Color string `json:"color,omitempty"`
}

// Dead is the zero cell
var Dead = Cell{}

// Alive returns a living cell with the given color
func Alive(color string) Cell {
	return Cell{Alive: true, Color: color}
}

// normalize enforces that dead cells have no color
func (c Cell) normalize() Cell {
	if !c.Alive {
		return Dead
	}
	return c
}
