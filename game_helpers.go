package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-colorlife/engine"
	"github.com/sheikhrachel/go-colorlife/model"
	"github.com/sheikhrachel/go-colorlife/palette"
	"github.com/sheikhrachel/go-colorlife/utils"
)

const (
	snapshotFile   = "snapshot.json"
	periodicResetN = 200
	minFrameRate   = time.Millisecond
	maxFrameRate   = 2 * time.Second
	frameRateStep  = 50 * time.Millisecond
	toggleQueueLen = 64
)

// game is the caller that owns the grid between ticks
type game struct {
	config   utils.Config
	screen   tcell.Screen
	renderer *model.TerminalRenderer
	engine   *engine.Engine
	pool     *model.GridPool
	stats    *utils.Stats
	history  *model.History
	rng      *rand.Rand
	hue      palette.HueSource

	grid           *model.Grid
	generation     int
	stagnantCount  int
	lastRestartGen int
	message        string

	paused          atomic.Bool
	restartRequest  atomic.Bool
	snapshotRequest atomic.Bool
	clearRequest    atomic.Bool
	stepRequests    atomic.Int32
	frameRate       atomic.Int64 // time.Duration between ticks
	toggles         chan [2]int  // (row, col) cells clicked by the user
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, screen tcell.Screen) *game {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &game{
		config:   config,
		screen:   screen,
		renderer: model.NewTerminalRenderer(screen),
		stats:    utils.NewStats(),
		history:  model.NewHistory(0),
		rng:      rand.New(rand.NewPCG(seed, seed>>1)),
		toggles:  make(chan [2]int, toggleQueueLen),
	}
	g.frameRate.Store(int64(clampFrameRate(config.FrameRate)))
	g.hue = palette.SeededHue(g.rng)

	opts := []engine.Option{engine.WithHueSource(g.hue)}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
		opts = append(opts, engine.WithPool(g.pool))
	}
	g.engine = engine.New(opts...)

	g.grid = g.initialGrid()
	return g
}

// initialGrid loads the configured pattern file, falling back to random patterns
func (g *game) initialGrid() *model.Grid {
	if g.config.PatternFile != "" {
		grid, err := model.LoadSnapshot(g.config.PatternFile)
		if err == nil {
			g.message = fmt.Sprintf("Loaded %s", g.config.PatternFile)
			return grid
		}
		g.message = fmt.Sprintf("Error loading pattern: %v", err)
	}
	return g.restartGame()
}

// run drives the tick loop and the input poller until either stops
func (g *game) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.screen.EnableMouse()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return g.pollEvents(cancel)
	})
	eg.Go(func() error {
		defer g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return g.loop(ctx)
	})
	return eg.Wait()
}

// pollEvents handles input until quit is requested or the loop interrupts it.
// Grid changes are queued for the loop, which owns the grid.
func (g *game) pollEvents(quit context.CancelFunc) error {
	var lastButtons tcell.ButtonMask
	for {
		switch ev := g.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventMouse:
			buttons := ev.Buttons()
			// act on press only, not on drag or release
			if buttons&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0 {
				x, y := ev.Position()
				g.queueToggle(y, x/model.CellWidth)
			}
			lastButtons = buttons
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				quit()
				return nil
			case ev.Rune() == ' ':
				g.paused.Store(!g.paused.Load())
			case ev.Rune() == 'r':
				g.restartRequest.Store(true)
			case ev.Rune() == 's':
				g.snapshotRequest.Store(true)
			case ev.Rune() == 'c':
				g.clearRequest.Store(true)
			case ev.Rune() == 'n':
				g.stepRequests.Add(1)
			case ev.Rune() == '+', ev.Rune() == '=':
				g.adjustFrameRate(-frameRateStep)
			case ev.Rune() == '-':
				g.adjustFrameRate(frameRateStep)
			}
		}
	}
}

// queueToggle records a click for the loop. Clicks beyond the queue size are dropped.
func (g *game) queueToggle(row, col int) {
	select {
	case g.toggles <- [2]int{row, col}:
	default:
	}
}

// adjustFrameRate changes the time between ticks by delta
func (g *game) adjustFrameRate(delta time.Duration) {
	g.frameRate.Store(int64(clampFrameRate(g.currentFrameRate() + delta)))
}

func (g *game) currentFrameRate() time.Duration {
	return time.Duration(g.frameRate.Load())
}

func clampFrameRate(d time.Duration) time.Duration {
	return min(max(d, minFrameRate), maxFrameRate)
}

// loop advances one generation per frame
func (g *game) loop(ctx context.Context) error {
	frameRate := g.currentFrameRate()
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if next := g.currentFrameRate(); next != frameRate {
			frameRate = next
			ticker.Reset(frameRate)
		}

		g.handleRequests()
		if g.paused.Load() {
			g.renderer.Display(g.grid,
				fmt.Sprintf("Paused at generation %d | Living: %d", g.generation, g.grid.CountLivingCells()),
				"space: resume  n: step  c: clear  click: toggle  s: save  q: quit")
			continue
		}

		frameStart := time.Now()
		livingCells, density, status, isStagnant := updateGameState(g.grid, g.history, g.generation, lastFrameTime, g.stats)
		lastFrameTime = frameStart

		if isStagnant {
			g.stagnantCount++
		} else {
			g.stagnantCount = 0
		}

		g.renderer.Display(g.grid, displayGameStatus(g, livingCells, density, status)...)

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			g.message = fmt.Sprintf("Reached maximum generations limit (%d)", g.config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config)
		if shouldRestart && g.config.AutoRestart {
			g.message = fmt.Sprintf("Restarted due to %s", restartReason)
			model.GridToPool(g.grid, g.pool)
			g.grid = g.restartGame()
			g.lastRestartGen = g.generation
			g.stagnantCount = 0
		} else if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			g.grid.InjectRandomLife(g.config.InjectionCount, g.rng, g.hue)
		}

		g.advance()
	}
}

// advance replaces the grid with its next generation
func (g *game) advance() {
	next, info := g.engine.Tick(g.grid)
	g.stats.FrontierSize = info.FrontierSize

	model.GridToPool(g.grid, g.pool)
	g.grid = next
	g.generation++
}

// handleRequests applies the input queued by the poller
func (g *game) handleRequests() {
	if g.snapshotRequest.Swap(false) {
		if err := model.SaveSnapshot(snapshotFile, g.grid); err != nil {
			g.message = fmt.Sprintf("Error saving snapshot: %v", err)
		} else {
			g.message = fmt.Sprintf("Saved %s at generation %d", snapshotFile, g.generation)
		}
	}
	if g.restartRequest.Swap(false) {
		model.GridToPool(g.grid, g.pool)
		g.grid = g.restartGame()
		g.lastRestartGen = g.generation
		g.stagnantCount = 0
		g.message = "Restarted on request"
	}
	if g.clearRequest.Swap(false) {
		g.grid.Clear()
		g.history.Reset()
		g.stagnantCount = 0
		g.message = "Cleared"
	}
	for pending := true; pending; {
		select {
		case rc := <-g.toggles:
			g.grid.Toggle(rc[0], rc[1], g.hue)
			g.history.Reset()
		default:
			pending = false
		}
	}
	// single steps only apply while paused; a running game ticks anyway
	if steps := g.stepRequests.Swap(0); g.paused.Load() {
		for range steps {
			g.advance()
		}
	}
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := 0.0
	if area := grid.Rows() * grid.Cols(); area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	// Update performance stats
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	// Check for stagnation before recording the current state
	isStagnant := history.IsStagnant(grid)
	history.Record(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus builds the status lines shown under the grid
func displayGameStatus(g *game, livingCells int, density float64, status string) []string {
	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Frontier: %d (%.1f%% of board)",
			g.generation, livingCells, density, status,
			g.stats.FrontierSize, g.stats.FrontierRatio(g.grid.Rows(), g.grid.Cols())*100),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			g.stats.GenerationsPerSecond, g.stats.AveragePopulation, time.Since(g.stats.StartTime).Seconds()),
	}

	if g.generation > g.lastRestartGen {
		lines = append(lines, fmt.Sprintf("Generations since restart: %d", g.generation-g.lastRestartGen))
	}
	if g.message != "" {
		lines = append(lines, g.message)
	}
	lines = append(lines, fmt.Sprintf("Tick every %v", g.currentFrameRate()))
	return append(lines, "space: pause  r: restart  c: clear  click: toggle  +/-: speed  s: save  q: quit")
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicResetN == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame builds a freshly seeded grid and forgets the stagnation history
func (g *game) restartGame() *model.Grid {
	g.history.Reset()

	var grid *model.Grid
	if g.pool != nil {
		grid = g.pool.Get(g.config.Rows, g.config.Cols)
	} else {
		grid = model.NewGrid(g.config.Rows, g.config.Cols)
	}
	grid.ResetWithInterestingPatterns(g.config, g.rng, g.hue)
	return grid
}
