package engine

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-colorlife/coord"
	"github.com/sheikhrachel/go-colorlife/model"
	"github.com/sheikhrachel/go-colorlife/palette"
)

var testColors = map[rune]string{
	'R': "red",
	'B': "blue",
	'G': "green",
	'W': "white",
	'#': "",
}

// gridOf builds a grid from rows of '.' (dead) and color letters (alive)
func gridOf(t *testing.T, rows ...string) *model.Grid {
	t.Helper()
	cells := make([][]model.Cell, len(rows))
	for r, row := range rows {
		for _, ch := range row {
			if ch == '.' {
				cells[r] = append(cells[r], model.Dead)
				continue
			}
			color, ok := testColors[ch]
			if !ok {
				t.Fatalf("unknown cell rune %q", ch)
			}
			cells[r] = append(cells[r], model.Alive(color))
		}
	}
	g, err := model.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return g
}

func expectAlive(t *testing.T, g *model.Grid, alive map[[2]int]bool) {
	t.Helper()
	for r := range g.Rows() {
		for c := range g.Cols() {
			cell := g.Get(r, c)
			if cell.Alive != alive[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, cell.Alive, alive[[2]int{r, c}])
			}
			if !cell.Alive && cell.Color != "" {
				t.Fatalf("dead cell (%d,%d) has color %q", r, c, cell.Color)
			}
		}
	}
}

func TestExtractActive(t *testing.T) {
	g := gridOf(t,
		"R.",
		".B",
	)

	active := ExtractActive(g)
	if active.Size() != 2 {
		t.Fatalf("active size = %d, expected 2", active.Size())
	}
	for _, key := range []coord.Key{coord.Encode(0, 0), coord.Encode(1, 1)} {
		if !active.Has(key) {
			t.Fatalf("active set missing %q", key)
		}
	}

	if empty := ExtractActive(gridOf(t, "..", "..")); empty.Size() != 0 {
		t.Fatalf("empty grid produced %d active cells", empty.Size())
	}
}

func TestExpandFrontier(t *testing.T) {
	active := ExtractActive(gridOf(t,
		".....",
		".#...",
		"..#..",
		"...#.",
		".....",
	))

	frontier := ExpandFrontier(active)
	expected := [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		{3, 1}, {3, 2}, {3, 3}, {3, 4},
		{4, 2}, {4, 3}, {4, 4},
	}

	if frontier.Size() != len(expected) {
		t.Fatalf("frontier size = %d, expected %d", frontier.Size(), len(expected))
	}
	for _, rc := range expected {
		if !frontier.Has(coord.Encode(rc[0], rc[1])) {
			t.Fatalf("frontier missing (%d,%d)", rc[0], rc[1])
		}
	}
}

func TestExpandFrontierClipsNegativeOnly(t *testing.T) {
	g := gridOf(t,
		"#.",
		".#",
	)

	frontier := ExpandFrontier(ExtractActive(g))
	frontier.Each(func(key coord.Key) {
		r, c := coord.MustDecode(key)
		if r < 0 || c < 0 {
			t.Fatalf("frontier contains negative coordinate %q", key)
		}
	})

	// (1,1) reaches past the 2x2 board; those members are kept for Step to discard
	if !frontier.Has(coord.Encode(2, 2)) {
		t.Fatal("frontier should not be clipped at the upper bound")
	}
	if frontier.Size() != 9 {
		t.Fatalf("frontier size = %d, expected 9", frontier.Size())
	}
}

func TestFrontierScalesWithPopulation(t *testing.T) {
	g := model.NewGrid(500, 500)
	g.Set(250, 250, model.Alive("red"))

	if size := ExpandFrontier(ExtractActive(g)).Size(); size != 9 {
		t.Fatalf("frontier size = %d for a single cell, expected 9", size)
	}
}

func TestBlinker(t *testing.T) {
	g := gridOf(t,
		"...",
		"RRR",
		"...",
	)

	next, info := New().Tick(g)
	expectAlive(t, next, map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
		{2, 1}: true,
	})

	want := TickInfo{ActiveCells: 3, FrontierSize: 12, Evaluated: 9, Born: 2, Survived: 1, Died: 2}
	if info != want {
		t.Fatalf("tick info = %+v, expected %+v", info, want)
	}

	back := ComputeNextGeneration(next)
	if !back.Equal(g) {
		t.Fatal("blinker did not return to its starting phase")
	}
}

func TestBlockStillLife(t *testing.T) {
	g := gridOf(t,
		"....",
		".RB.",
		".GW.",
		"....",
	)

	next := ComputeNextGeneration(g)
	if !next.Equal(g) {
		t.Fatal("block changed after one step")
	}
}

func TestNonSquareGridAtEdge(t *testing.T) {
	g := gridOf(t,
		".....",
		".....",
		"RRR..",
	)

	next, info := New().Tick(g)
	expectAlive(t, next, map[[2]int]bool{
		{1, 1}: true,
		{2, 1}: true,
	})
	if info.Evaluated >= info.FrontierSize {
		t.Fatalf("expected out of range frontier members to be skipped, got %+v", info)
	}
}

func TestColorInheritance(t *testing.T) {
	tests := []struct {
		name string
		grid []string
		want string
	}{
		{
			name: "plurality wins",
			grid: []string{"R.R", "...", ".B."},
			want: "red",
		},
		{
			name: "distinct colors take first in scan order",
			grid: []string{"G.R", "...", ".B."},
			want: "green",
		},
		{
			name: "scan order is row by row",
			grid: []string{"..G", "B..", ".R."},
			want: "green",
		},
		{
			name: "uncolored neighbors are ignored in the vote",
			grid: []string{"#.#", "...", ".B."},
			want: "blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := New(WithHueSource(palette.FixedHue(10))).ComputeNextGeneration(gridOf(t, tt.grid...))
			cell := next.Get(1, 1)
			if !cell.Alive {
				t.Fatal("center cell was not born")
			}
			if cell.Color != tt.want {
				t.Fatalf("born color = %q, expected %q", cell.Color, tt.want)
			}
		})
	}
}

func TestFreshColorWhenNeighborsUncolored(t *testing.T) {
	g := gridOf(t,
		"#.#",
		"...",
		".#.",
	)

	next := New(WithHueSource(palette.FixedHue(200))).ComputeNextGeneration(g)
	if got := next.Get(1, 1); !got.Alive || got.Color != "hsl(200, 100%, 50%)" {
		t.Fatalf("born cell = %+v, expected fresh hsl(200) color", got)
	}
}

func TestSurvivorKeepsColor(t *testing.T) {
	next := ComputeNextGeneration(gridOf(t,
		"...",
		"GRB",
		"...",
	))
	if got := next.Get(1, 1); got != model.Alive("red") {
		t.Fatalf("survivor = %+v, expected red", got)
	}
	for _, rc := range [][2]int{{0, 1}, {2, 1}} {
		if got := next.Get(rc[0], rc[1]).Color; got != "green" {
			t.Fatalf("born (%d,%d) color = %q, expected green", rc[0], rc[1], got)
		}
	}
}

func TestGliderKeepsColorAndMoves(t *testing.T) {
	g := model.NewGrid(8, 8)
	g.AddGlider(0, 0, palette.FixedHue(90))
	want := g.Clone()

	e := New()
	for range 4 {
		g = e.ComputeNextGeneration(g)
	}

	// after four ticks a glider has moved one cell down and one right
	for r := range 7 {
		for c := range 7 {
			if got, exp := g.Get(r+1, c+1), want.Get(r, c); got != exp {
				t.Fatalf("cell (%d,%d) = %+v, expected %+v", r+1, c+1, got, exp)
			}
		}
	}
}

func TestInputIsNotMutated(t *testing.T) {
	g := gridOf(t,
		".R..",
		"..B.",
		"GRR.",
		"....",
	)
	before := g.Clone()

	next := ComputeNextGeneration(g)
	if !g.Equal(before) {
		t.Fatal("input grid changed during step")
	}

	next.Set(0, 1, model.Alive("white"))
	next.Clear()
	if !g.Equal(before) {
		t.Fatal("output grid aliases the input")
	}
}

func TestEmptyGrids(t *testing.T) {
	for _, g := range []*model.Grid{model.NewGrid(0, 0), model.NewGrid(3, 7)} {
		next := ComputeNextGeneration(g)
		if next.Rows() != g.Rows() || next.Cols() != g.Cols() {
			t.Fatalf("dimensions changed: %dx%d -> %dx%d", g.Rows(), g.Cols(), next.Rows(), next.Cols())
		}
		if next.CountLivingCells() != 0 {
			t.Fatal("life appeared from nothing")
		}
	}
}

func TestWithPool(t *testing.T) {
	pool := model.NewGridPool()
	e := New(WithPool(pool))

	g := gridOf(t,
		"...",
		"RRR",
		"...",
	)
	next := e.ComputeNextGeneration(g)
	model.GridToPool(g, pool)

	again := e.ComputeNextGeneration(next)
	expectAlive(t, again, map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
	})
}

func TestConcurrentIndependentGrids(t *testing.T) {
	e := New()
	block := gridOf(t, "....", ".RB.", ".GW.", "....")

	var eg errgroup.Group
	for range 8 {
		g := block.Clone()
		eg.Go(func() error {
			for range 10 {
				g = e.ComputeNextGeneration(g)
			}
			if !g.Equal(block) {
				return fmt.Errorf("block changed, population = %d", g.CountLivingCells())
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}
}
