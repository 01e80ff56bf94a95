package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	return tmpfile.Name()
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test configuration",
		"size": 4,
		"shuffle_factor": 20,
		"labels": {
			"3": "Easy",
			"4": "Medium"
		},
		"messages": {
			"welcome": "Welcome!",
			"move_rejected": "Can't move!",
			"victory": "Solved in %d moves!",
			"paused": "Paused",
			"resumed": "Resumed",
			"move_status": "Moves: %d"
		}
	}`

	path := writeTempConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Failed to read file") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_SizeOutOfRange(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"size": 1,
		"shuffle_factor": 10,
		"messages": {
			"welcome": "Welcome!",
			"move_rejected": "Can't move!",
			"victory": "Solved in %d moves!",
			"paused": "Paused",
			"resumed": "Resumed",
			"move_status": "Moves: %d"
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to size out of range")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Size must be between") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Size must be between' error")
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"size": 3,
		"shuffle_factor": 10,
		"messages": {
			"welcome": "Welcome!"
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to missing messages")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Missing required message: victory") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Missing required message: victory' error")
	}
}

func TestValidateConfig_VictoryWithoutPlaceholder(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"size": 3,
		"shuffle_factor": 10,
		"messages": {
			"welcome": "Welcome!",
			"move_rejected": "Can't move!",
			"victory": "Solved!",
			"paused": "Paused",
			"resumed": "Resumed",
			"move_status": "Moves: %d"
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Errorf("Expected invalid config due to victory message without %%d")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "'victory' must contain") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected victory placeholder error")
	}
}

func TestValidateConfig_BadLabelKey(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"size": 3,
		"shuffle_factor": 10,
		"labels": {
			"huge": "Huge"
		},
		"messages": {
			"welcome": "Welcome!",
			"move_rejected": "Can't move!",
			"victory": "Solved in %d moves!",
			"paused": "Paused",
			"resumed": "Resumed",
			"move_status": "Moves: %d"
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to non-numeric label key")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Label key 'huge'") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected label key error")
	}
}

func TestValidateShuffle_Valid(t *testing.T) {
	result := validateShuffle(4, 20)
	if !result.Valid {
		t.Errorf("Expected valid shuffle, but got errors: %v", result.Errors)
	}
}

func TestValidateShuffle_Zero(t *testing.T) {
	result := validateShuffle(4, 0)
	if result.Valid {
		t.Error("Expected invalid result for zero shuffle factor")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "already solved") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'already solved' error")
	}
}

func TestValidateShuffle_Negative(t *testing.T) {
	result := validateShuffle(4, -5)
	if result.Valid {
		t.Error("Expected invalid result for negative shuffle factor")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "must not be negative") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'must not be negative' error")
	}
}

func TestValidateConfig_ShippedConfigs(t *testing.T) {
	files, err := filepath.Glob("../configs/*.json")
	if err != nil || len(files) == 0 {
		t.Skip("Skipping test - configs directory not found")
	}

	for _, file := range files {
		result := validateConfig(file)
		if !result.Valid {
			t.Errorf("Shipped config %s is invalid: %v", result.File, result.Errors)
		}
	}
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
