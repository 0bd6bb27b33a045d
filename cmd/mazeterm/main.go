// Command mazeterm plays the endless maze locally in a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/labiri-api/config"
	logger "github.com/beka-birhanu/labiri-api/infrastruture/log"
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/beka-birhanu/labiri-api/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// The screen owns stdout while the game runs; log to a file when asked.
	var logOut io.Writer = io.Discard
	if path, ok := os.LookupEnv("MAZETERM_LOG"); ok {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}

	gameLogger, err := logger.New("MAZETERM", config.ColorBlue, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	cfg := config.LoadMaze()
	gen := maze.NewGenerator(cfg.RandomSeed)
	state, err := maze.NewState(cfg.InitialCols, cfg.InitialRows, gen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating maze: %v\n", err)
		os.Exit(1)
	}
	gameLogger.Info(fmt.Sprintf("starting %dx%d maze with seed %d", cfg.InitialCols, cfg.InitialRows, gen.Seed()))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "initialising screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	game := terminal.NewGame(screen, state, gameLogger)
	game.Run()
	screen.Fini()

	final := game.State()
	fmt.Printf("escaped %d mazes, reached level %d (%dx%d)\n", final.Score(), final.Level(), final.Cols(), final.Rows())
}
