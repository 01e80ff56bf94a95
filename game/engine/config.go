package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidatePuzzleConfig validates a puzzle configuration for correctness
func ValidatePuzzleConfig(config *PuzzleConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.Size < MinPuzzleSize || config.Size > MaxPuzzleSize {
		return fmt.Errorf("config validation: size must be between %d and %d, got %d", MinPuzzleSize, MaxPuzzleSize, config.Size)
	}

	if config.ShuffleFactor < 0 {
		return fmt.Errorf("config validation: shuffle_factor must not be negative, got %d", config.ShuffleFactor)
	}

	// Label keys are sizes rendered as strings; the values are free-form
	// display names used by presentation layers only.
	for key := range config.Labels {
		size, err := strconv.Atoi(key)
		if err != nil || size < MinPuzzleSize || size > MaxPuzzleSize {
			return fmt.Errorf("config validation: labels key '%s' must be a size between %d and %d", key, MinPuzzleSize, MaxPuzzleSize)
		}
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}
	if !strings.Contains(config.Messages.Victory, "%d") {
		return fmt.Errorf("config validation: messages.victory must contain %%d for the move count")
	}
	if config.Messages.MoveStatus != "" && !strings.Contains(config.Messages.MoveStatus, "%d") {
		return fmt.Errorf("config validation: messages.move_status must contain %%d for the move count")
	}

	return nil
}

// LoadPuzzleConfig loads a puzzle configuration from a JSON file
func LoadPuzzleConfig(filename string) (*PuzzleConfig, error) {
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultPuzzleConfig returns the built-in classic 4x4 configuration used when
// no config file is available.
func DefaultPuzzleConfig() *PuzzleConfig {
	config := &PuzzleConfig{
		Name:          "Classic",
		Description:   "The classic 15-puzzle on a 4x4 grid",
		Size:          4,
		ShuffleFactor: DefaultShuffleFactor,
		Labels: map[string]string{
			"3": "Easy",
			"4": "Medium",
			"5": "Hard",
			"6": "Expert",
		},
	}
	config.Messages.Welcome = "Tiles shuffled. Slide them back into order!"
	config.Messages.MoveRejected = "That tile can't move"
	config.Messages.Victory = "Solved in %d moves!"
	config.Messages.Paused = "Game paused"
	config.Messages.Resumed = "Game resumed"
	config.Messages.MoveStatus = "Moves: %d"
	return config
}

// InitGameState generates a new guaranteed-solvable puzzle for the given
// configuration. The flow is: solved grid -> random walk shuffle -> parity
// check with single-swap repair. The walk alone cannot leave the solvable
// class; the check stays as a consistency gate and is the only path exercised
// for grids supplied from outside the generator.
func InitGameState(config *PuzzleConfig, rng *rand.Rand) *GameState {
	if config == nil {
		config = DefaultPuzzleConfig()
	}

	grid := NewSolvedGrid(config.Size)
	blank := ShuffleGrid(grid, rng, config.ShuffleFactor)

	if !IsSolvable(grid) {
		MakeSolvable(grid)
		blank = LocateBlank(grid)
	}

	if !IsPermutation(grid) {
		panic(fmt.Sprintf("engine: generated %dx%d grid is not a permutation", config.Size, config.Size))
	}

	return &GameState{
		Grid:        grid,
		Size:        config.Size,
		BlankPos:    blank,
		Moves:       0,
		Solvable:    true,
		Status:      StatusPlaying,
		Message:     config.Messages.Welcome,
		ConfigName:  config.Name,
		MoveHistory: []MoveHistoryEntry{},
		TotalMoves:  0,
	}
}
