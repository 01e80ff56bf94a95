// Package engine provides the core game logic for the sliding tile puzzle.
//
// The engine package implements the puzzle mechanics including:
//   - The NxN tile grid and blank-position tracking
//   - Solvable puzzle generation via a random walk of the blank
//   - The inversion-count solvability test with single-swap repair
//   - Move validation, execution, and win detection
//   - Game state management and configuration validation
//
// Core Types:
//
// The Engine interface defines the main contract for puzzle operations,
// implemented by GameEngine. GameState represents the current puzzle state,
// while PuzzleConfig defines the puzzle parameters loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadPuzzleConfig("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tile at row 2, col 3 into the blank
//	success := gameEngine.Move(2, 3)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Tiles numbered 1..N*N-1 sit on an NxN grid with one blank cell. A tile
// orthogonally adjacent to the blank may slide into it. The puzzle is won
// when every tile is back in row-major order with the blank bottom-right.
// Generation walks the blank through thousands of legal moves, so every
// puzzle dealt to a player is reachable from the solved state; the parity
// validator double-checks and repairs any externally supplied arrangement.
//
// Concurrency:
//
// The engine is synchronous and single-writer. All randomness flows through
// an injected *rand.Rand so tests can reproduce shuffles exactly.
package engine
