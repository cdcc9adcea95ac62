package model

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-colorlife/coord"
)

// Snapshot is the sparse serialized shape of a grid: its dimensions plus the
// color of every alive cell keyed by coordinate.
type Snapshot struct {
	Rows  int                  `json:"rows"`
	Cols  int                  `json:"cols"`
	Alive map[coord.Key]string `json:"alive"`
}

// SnapshotOf captures the alive cells of g
func SnapshotOf(g *Grid) Snapshot {
	snap := Snapshot{
		Rows:  g.rows,
		Cols:  g.cols,
		Alive: make(map[coord.Key]string),
	}
	for r := range g.rows {
		for c := range g.cols {
			if cell := g.cells[r][c]; cell.Alive {
				snap.Alive[coord.Encode(r, c)] = cell.Color
			}
		}
	}
	return snap
}

// Grid rebuilds a dense grid from the snapshot
func (s Snapshot) Grid() (*Grid, error) {
	if s.Rows <= 0 || s.Cols <= 0 {
		return nil, errors.Wrapf(ErrMalformedGrid, "[Snapshot.Grid] dimensions %dx%d", s.Rows, s.Cols)
	}

	g := NewGrid(s.Rows, s.Cols)
	for key, color := range s.Alive {
		r, c, err := coord.Decode(key)
		if err != nil {
			return nil, errors.Wrap(err, "[Snapshot.Grid]")
		}
		if !g.InBounds(r, c) {
			return nil, errors.Wrapf(ErrMalformedGrid, "[Snapshot.Grid] cell %q outside %dx%d", key, s.Rows, s.Cols)
		}
		g.cells[r][c] = Alive(color)
	}
	return g, nil
}

// LoadSnapshot reads a JSON snapshot from filename and rebuilds its grid
func LoadSnapshot(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadSnapshot] failed to read file: %+v", filename)
	}

	var snap Snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "[LoadSnapshot] failed to unmarshal data from file: %+v", filename)
	}

	return snap.Grid()
}

// SaveSnapshot writes the sparse form of g to filename as JSON. Empty-sized
// grids are refused since LoadSnapshot could not rebuild them.
func SaveSnapshot(filename string, g *Grid) error {
	if g.rows <= 0 || g.cols <= 0 {
		return errors.Wrapf(ErrMalformedGrid, "[SaveSnapshot] dimensions %dx%d", g.rows, g.cols)
	}

	data, err := json.MarshalIndent(SnapshotOf(g), "", "  ")
	if err != nil {
		return errors.Wrap(err, "[SaveSnapshot] failed to marshal grid")
	}

	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SaveSnapshot] failed to write file: %+v", filename)
	}
	return nil
}
