// Command console runs the sliding puzzle as an interactive terminal session.
//
// The board renders as a bordered table after every input. Moves are entered
// as a 1-indexed "row col" pair; entering 0, an empty line, or EOF ends the
// session. Input with the wrong shape re-prompts without counting as a move.
//
// Flags select the configuration, override the board size, and fix the RNG
// seed for a reproducible shuffle.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/slidepuzzle/game/config"
	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

// inputAction classifies one line of console input.
type inputAction int

const (
	actionMove inputAction = iota
	actionQuit
	actionInvalid
)

func main() {
	cmd := &cli.Command{
		Name:  "console",
		Usage: "Play the sliding puzzle in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "classic",
				Usage: "Configuration name to load",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "Directory containing puzzle configurations",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "Board size override (2-10)",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "RNG seed for a reproducible shuffle",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			puzzleConfig := loadConfig(cmd.String("config-dir"), cmd.String("config"))

			if size := int(cmd.Int("size")); size != 0 {
				if size < engine.MinPuzzleSize || size > engine.MaxPuzzleSize {
					return fmt.Errorf("size must be between %d and %d, got %d", engine.MinPuzzleSize, engine.MaxPuzzleSize, size)
				}
				resized := *puzzleConfig
				resized.Size = size
				puzzleConfig = &resized
			}

			var eng *engine.GameEngine
			var err error
			if cmd.IsSet("seed") {
				rng := rand.New(rand.NewSource(int64(cmd.Int("seed"))))
				eng, err = engine.NewEngineWithRand(puzzleConfig, rng)
			} else {
				eng, err = engine.NewEngine(puzzleConfig)
			}
			if err != nil {
				return fmt.Errorf("failed to create engine: %w", err)
			}

			return runConsole(eng, os.Stdin, os.Stdout)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig loads the named configuration, falling back to the built-in
// default when the configs directory or the named file is unavailable.
func loadConfig(configDir, name string) *engine.PuzzleConfig {
	manager, err := config.NewManager(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using built-in default\n", err)
		return engine.DefaultPuzzleConfig()
	}

	puzzleConfig, err := manager.LoadConfig(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using built-in default\n", err)
		return engine.DefaultPuzzleConfig()
	}

	return puzzleConfig
}

// runConsole drives the read-eval loop over the given reader and writer until
// the puzzle is solved or the player quits.
func runConsole(eng *engine.GameEngine, in io.Reader, out io.Writer) error {
	cfg := eng.GetConfig()
	state := eng.GetState()

	fmt.Fprintf(out, "%s - %s (%s)\n", cfg.Name, cfg.Description, engine.SizeLabel(cfg, state.Size))
	fmt.Fprintln(out, state.Message)

	scanner := bufio.NewScanner(in)
	for {
		state = eng.GetState()
		fmt.Fprint(out, engine.RenderGrid(state.Grid))
		if cfg.Messages.MoveStatus != "" {
			fmt.Fprintf(out, cfg.Messages.MoveStatus+"\n", state.Moves)
		}
		fmt.Fprint(out, "Move (row col, 1-indexed; 0 to quit): ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Session ended after %d moves.\n", state.Moves)
			return scanner.Err()
		}

		row, col, action := parseMove(scanner.Text())
		switch action {
		case actionQuit:
			fmt.Fprintf(out, "Session ended after %d moves.\n", state.Moves)
			return nil
		case actionInvalid:
			fmt.Fprintln(out, "Enter a move as two numbers: row col (1-indexed), or 0 to quit.")
			continue
		}

		// The engine is 0-indexed; the console contract is 1-indexed.
		if !eng.Move(row-1, col-1) {
			fmt.Fprintln(out, eng.GetState().Message)
			continue
		}

		if eng.IsWon() {
			state = eng.GetState()
			fmt.Fprint(out, engine.RenderGrid(state.Grid))
			fmt.Fprintln(out, state.Message)
			return nil
		}
	}
}

// parseMove classifies one input line. An empty line or a leading 0 quits,
// anything that is not exactly two integers is invalid, and a valid pair is
// returned 1-indexed as entered.
func parseMove(line string) (row, col int, action inputAction) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, 0, actionQuit
	}

	if fields[0] == "0" {
		return 0, 0, actionQuit
	}

	if len(fields) != 2 {
		return 0, 0, actionInvalid
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, actionInvalid
	}
	col, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, actionInvalid
	}

	return row, col, actionMove
}
