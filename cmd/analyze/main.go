// Command analyze prints quick, human-readable heuristics about puzzle
// configuration files in the project's configs directory. It summarizes board
// dimensions, shuffle depth relative to the tile count, the size of the
// reachable state space, and label coverage, and highlights boards whose
// shuffle is too light to scramble them properly.
package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Size          int               `json:"size"`
	ShuffleFactor int               `json:"shuffle_factor"`
	Labels        map[string]string `json:"labels"`
	Messages      map[string]string `json:"messages"`
}

func main() {
	configs := []string{
		"classic.json",
		"easy.json",
		"hard.json",
		"expert.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	tiles := tileCount(config.Size)

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d (%d tiles)\n", config.Size, config.Size, tiles)
	fmt.Printf("Shuffle Factor: %d\n", config.ShuffleFactor)

	if tiles > 0 {
		perTile := float64(config.ShuffleFactor) / float64(tiles)
		fmt.Printf("Shuffle per tile: %.2f\n", perTile)
	}

	if config.Size >= 2 {
		fmt.Printf("Reachable states: ~%s\n", formatBig(stateSpace(config.Size)))
	}

	// Shuffle depth heuristics
	if config.ShuffleFactor == 0 {
		fmt.Printf("⚠️  WARNING: shuffle factor is 0, the board starts already solved!\n")
	} else if config.ShuffleFactor < tiles {
		fmt.Printf("⚠️  WARNING: shuffle factor %d is below the tile count %d\n", config.ShuffleFactor, tiles)
		fmt.Printf("   The bottom rows will barely move; consider at least %d\n", tiles)
	} else {
		fmt.Printf("✅ Shuffle depth is adequate for this board\n")
	}

	// Label coverage
	if len(config.Labels) > 0 {
		sizes := make([]string, 0, len(config.Labels))
		for key := range config.Labels {
			sizes = append(sizes, key)
		}
		sort.Strings(sizes)
		fmt.Printf("Labels: %d size names\n", len(config.Labels))
		for _, key := range sizes {
			marker := " "
			if n, err := strconv.Atoi(key); err == nil && n == config.Size {
				marker = "*"
			}
			fmt.Printf("   %s %sx%s: %s\n", marker, key, key, config.Labels[key])
		}
		if _, exists := config.Labels[strconv.Itoa(config.Size)]; !exists {
			fmt.Printf("⚠️  No label for the configured size %d, presentation falls back to %dx%d\n", config.Size, config.Size, config.Size)
		}
	} else {
		fmt.Printf("Labels: none, presentation falls back to NxN\n")
	}
}

// tileCount returns the number of movable tiles on a size x size board.
func tileCount(size int) int {
	return size*size - 1
}

// stateSpace returns the number of reachable board configurations:
// (size^2)! / 2. Half of all permutations are unreachable because slide
// moves preserve solvability parity.
func stateSpace(size int) *big.Int {
	cells := int64(size * size)
	states := new(big.Int).MulRange(1, cells)
	return states.Div(states, big.NewInt(2))
}

// formatBig renders a big integer in compact scientific notation when it is
// too large to read as digits.
func formatBig(n *big.Int) string {
	s := n.String()
	if len(s) <= 12 {
		return s
	}
	f := new(big.Float).SetInt(n)
	return fmt.Sprintf("%.2e", f)
}
