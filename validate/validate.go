// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board size within the supported range
//   - Shuffle factor sanity (positive, deep enough to scramble the board)
//   - Label keys that parse as sizes within the supported range
//   - Required message keys and %d placeholders in counter messages
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Board size limits mirror the engine's supported range.
const (
	minSize = 2
	maxSize = 10
)

// Config mirrors the JSON schema for a puzzle configuration.
type Config struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Size          int               `json:"size"`
	ShuffleFactor int               `json:"shuffle_factor"`
	Labels        map[string]string `json:"labels"`
	Messages      map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, label validation, message presence,
// and shuffle depth analysis.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate identity fields
	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Name is required")
	}

	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Description is required")
	}

	// Validate board size
	if config.Size < minSize || config.Size > maxSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Size must be between %d and %d, got %d", minSize, maxSize, config.Size))
	}

	// Validate labels - keys must parse as sizes in the supported range
	for key := range config.Labels {
		size, err := strconv.Atoi(key)
		if err != nil || size < minSize || size > maxSize {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Label key '%s' must be a size between %d and %d", key, minSize, maxSize))
		}
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"move_rejected",
		"victory",
		"paused",
		"resumed",
		"move_status",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Counter messages are formatted with the move count
	if victory, exists := config.Messages["victory"]; exists && !strings.Contains(victory, "%d") {
		result.Valid = false
		result.Errors = append(result.Errors, "Message 'victory' must contain %d for the move count")
	}
	if status, exists := config.Messages["move_status"]; exists && status != "" && !strings.Contains(status, "%d") {
		result.Valid = false
		result.Errors = append(result.Errors, "Message 'move_status' must contain %d for the move count")
	}

	// Shuffle depth validation - check the board actually gets scrambled
	if result.Valid {
		shuffleResult := validateShuffle(config.Size, config.ShuffleFactor)
		if !shuffleResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, shuffleResult.Errors...)
		} else {
			result.Errors = append(result.Errors, shuffleResult.Errors...)
		}
	}

	// Add informational data
	if result.Valid {
		tiles := config.Size*config.Size - 1
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d tiles)", config.Size, config.Size, tiles))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Labels: %d size names", len(config.Labels)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Messages: all %d present", len(requiredMessages)))
	}

	return result
}

// validateShuffle checks that the shuffle factor will actually scramble a
// board of the given size. A zero factor leaves the board solved, and a
// factor below the tile count barely disturbs the bottom rows.
func validateShuffle(size, shuffleFactor int) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if shuffleFactor < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("shuffle_factor must not be negative, got %d", shuffleFactor))
		return result
	}

	if shuffleFactor == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "shuffle_factor is 0: the board would start already solved")
		return result
	}

	tiles := size*size - 1
	if tiles > 0 && shuffleFactor < tiles {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle: %d random moves (light for %d tiles)", shuffleFactor, tiles))
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle: %d random moves", shuffleFactor))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
