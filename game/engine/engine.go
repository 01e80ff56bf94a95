package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for puzzle operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Restart() *GameState
	Resize(size int) (*GameState, error)
	IsWon() bool
	IsSolved() bool
	GetMoves() int
	GetBlankPosition() Position

	// Pause control; driven by front-ends, never by the engine itself
	Pause() bool
	Resume() bool

	// Move operations
	Move(row, col int) bool
	CanMove(row, col int) bool
	BulkMove(targets []Position) []bool
	GetMovableTiles() []Position

	// Configuration
	GetConfig() *PuzzleConfig
	SetConfig(config *PuzzleConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *PuzzleConfig
	rng    *rand.Rand
}

// NewEngine creates a new puzzle engine with the provided configuration and a
// time-seeded random source.
func NewEngine(config *PuzzleConfig) (*GameEngine, error) {
	return NewEngineWithRand(config, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand creates a new puzzle engine with an explicit random
// source, so tests can seed the shuffle deterministically.
func NewEngineWithRand(config *PuzzleConfig, rng *rand.Rand) (*GameEngine, error) {
	if err := ValidatePuzzleConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: config,
		rng:    rng,
	}
	engine.state = InitGameState(config, rng)

	return engine, nil
}

// NewEngineWithDefaults creates a new puzzle engine with the built-in classic
// configuration.
func NewEngineWithDefaults() *GameEngine {
	engine := &GameEngine{
		config: DefaultPuzzleConfig(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	engine.state = InitGameState(engine.config, engine.rng)
	return engine
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading). The supplied
// grid must be a permutation with a consistent blank position; a violation
// here can only come from corrupted storage or a programming error.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if len(state.Grid) != state.Size {
		return fmt.Errorf("state grid has %d rows, size says %d", len(state.Grid), state.Size)
	}
	if !IsPermutation(state.Grid) {
		return fmt.Errorf("state grid is not a permutation of 0..%d", state.Size*state.Size-1)
	}
	if blank := LocateBlank(state.Grid); blank != state.BlankPos {
		return fmt.Errorf("state blank position (%d,%d) does not match grid blank (%d,%d)",
			state.BlankPos.Row, state.BlankPos.Col, blank.Row, blank.Col)
	}

	state.Solvable = IsSolvable(state.Grid)
	e.state = state
	return nil
}

// Restart regenerates the puzzle at the current size. Cumulative history and
// the total move count survive; the per-puzzle move counter starts over.
func (e *GameEngine) Restart() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitGameState(e.config, e.rng)
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state
}

// Resize regenerates the puzzle at a new size, keeping the rest of the
// configuration.
func (e *GameEngine) Resize(size int) (*GameState, error) {
	if size < MinPuzzleSize || size > MaxPuzzleSize {
		return nil, fmt.Errorf("size must be between %d and %d, got %d", MinPuzzleSize, MaxPuzzleSize, size)
	}

	resized := *e.config
	resized.Size = size
	e.config = &resized

	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves
	e.state = InitGameState(e.config, e.rng)
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state, nil
}

// IsWon returns whether the session has reached the terminal won state
func (e *GameEngine) IsWon() bool {
	return e.state.Status == StatusWon
}

// IsSolved returns whether the grid currently equals the solved arrangement
func (e *GameEngine) IsSolved() bool {
	return IsSolvedGrid(e.state.Grid)
}

// GetMoves returns the move counter for the current puzzle
func (e *GameEngine) GetMoves() int {
	return e.state.Moves
}

// GetBlankPosition returns the current blank position
func (e *GameEngine) GetBlankPosition() Position {
	return e.state.BlankPos
}

// Pause suspends play. It reports false if the session is not playing.
func (e *GameEngine) Pause() bool {
	if e.state.Status != StatusPlaying {
		return false
	}
	e.state.Status = StatusPaused
	if e.config.Messages.Paused != "" {
		e.state.Message = e.config.Messages.Paused
	}
	return true
}

// Resume returns a paused session to play. It reports false otherwise.
func (e *GameEngine) Resume() bool {
	if e.state.Status != StatusPaused {
		return false
	}
	e.state.Status = StatusPlaying
	if e.config.Messages.Resumed != "" {
		e.state.Message = e.config.Messages.Resumed
	}
	return true
}

// Move attempts to slide the tile at (row, col) into the blank cell
func (e *GameEngine) Move(row, col int) bool {
	blankFrom := e.state.BlankPos
	var tile int
	if row >= 0 && row < e.state.Size && col >= 0 && col < e.state.Size {
		tile = e.state.Grid[row][col]
	}

	success := e.state.MoveTile(row, col, e.config)
	e.state.AddMoveToHistory(Position{Row: row, Col: col}, blankFrom, tile, success)

	return success
}

// CanMove checks whether the tile at (row, col) can slide into the blank cell
func (e *GameEngine) CanMove(row, col int) bool {
	if e.state.Status != StatusPlaying {
		return false
	}
	return e.state.CanMoveTile(row, col)
}

// BulkMove executes multiple moves in sequence, returning success status for
// each. It stops early once the puzzle is won.
func (e *GameEngine) BulkMove(targets []Position) []bool {
	results := make([]bool, 0, len(targets))

	for _, target := range targets {
		if e.IsWon() {
			break
		}
		results = append(results, e.Move(target.Row, target.Col))
	}

	return results
}

// GetMovableTiles returns the positions of the tiles that can currently move
func (e *GameEngine) GetMovableTiles() []Position {
	if e.state.Status != StatusPlaying {
		return nil
	}
	return e.state.MovableTiles()
}

// GetConfig returns the current puzzle configuration
func (e *GameEngine) GetConfig() *PuzzleConfig {
	return e.config
}

// SetConfig sets a new puzzle configuration and regenerates the puzzle
func (e *GameEngine) SetConfig(config *PuzzleConfig) error {
	if err := ValidatePuzzleConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitGameState(config, e.rng)
	return nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}
