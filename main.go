package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-colorlife/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Println("Error creating screen:", err)
		os.Exit(1)
	}
	if err = screen.Init(); err != nil {
		fmt.Println("Error initializing screen:", err)
		os.Exit(1)
	}

	g := initializeGame(config, screen)
	runErr := g.run(ctx)
	screen.Fini()

	if runErr != nil {
		fmt.Println("Error running game:", runErr)
	}
	if g.message != "" {
		fmt.Println(g.message)
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.generation, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
