package main

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

func testConfig() *engine.PuzzleConfig {
	config := &engine.PuzzleConfig{
		Name:          "Test Puzzle",
		Description:   "Console test configuration",
		Size:          3,
		ShuffleFactor: 10,
	}
	config.Messages.Welcome = "Tiles shuffled!"
	config.Messages.MoveRejected = "That tile can't move"
	config.Messages.Victory = "Solved in %d moves!"
	config.Messages.Paused = "Paused"
	config.Messages.Resumed = "Resumed"
	config.Messages.MoveStatus = "Moves: %d"
	return config
}

func testEngine(t *testing.T) *engine.GameEngine {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	eng, err := engine.NewEngineWithRand(testConfig(), rng)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return eng
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		row    int
		col    int
		action inputAction
	}{
		{"valid pair", "2 3", 2, 3, actionMove},
		{"extra whitespace", "  1   2  ", 1, 2, actionMove},
		{"sentinel zero", "0", 0, 0, actionQuit},
		{"sentinel zero with trailing", "0 5", 0, 0, actionQuit},
		{"empty line", "", 0, 0, actionQuit},
		{"whitespace only", "   ", 0, 0, actionQuit},
		{"single number", "3", 0, 0, actionInvalid},
		{"three numbers", "1 2 3", 0, 0, actionInvalid},
		{"non-numeric row", "a 2", 0, 0, actionInvalid},
		{"non-numeric col", "2 b", 0, 0, actionInvalid},
		{"negative pair", "-1 2", -1, 2, actionMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, action := parseMove(tt.input)
			if action != tt.action {
				t.Errorf("parseMove(%q) action = %d, expected %d", tt.input, action, tt.action)
			}
			if action == actionMove && (row != tt.row || col != tt.col) {
				t.Errorf("parseMove(%q) = (%d,%d), expected (%d,%d)", tt.input, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestRunConsole_QuitImmediately(t *testing.T) {
	eng := testEngine(t)

	var out strings.Builder
	err := runConsole(eng, strings.NewReader("0\n"), &out)
	if err != nil {
		t.Fatalf("runConsole returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Tiles shuffled!") {
		t.Error("Expected welcome message in output")
	}
	if !strings.Contains(output, "+---+---+---+") {
		t.Error("Expected bordered grid in output")
	}
	if !strings.Contains(output, "Session ended after 0 moves.") {
		t.Errorf("Expected session end message, got:\n%s", output)
	}
}

func TestRunConsole_EOFEndsSession(t *testing.T) {
	eng := testEngine(t)

	var out strings.Builder
	err := runConsole(eng, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("runConsole returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Session ended after 0 moves.") {
		t.Error("Expected session end message on EOF")
	}
}

func TestRunConsole_InvalidInputRepromptsWithoutCounting(t *testing.T) {
	eng := testEngine(t)

	var out strings.Builder
	input := "1 2 3\nnope\nx y\n0\n"
	if err := runConsole(eng, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runConsole returned error: %v", err)
	}

	output := out.String()
	if strings.Count(output, "Enter a move as two numbers") != 3 {
		t.Errorf("Expected 3 re-prompts, got:\n%s", output)
	}
	if !strings.Contains(output, "Session ended after 0 moves.") {
		t.Error("Invalid input must not count as a move")
	}
	if eng.GetMoves() != 0 {
		t.Errorf("Expected 0 moves after invalid input, got %d", eng.GetMoves())
	}
}

func TestRunConsole_RejectedMoveKeepsPrompting(t *testing.T) {
	eng := testEngine(t)

	// The blank cell itself can never slide, so targeting it is always rejected.
	blank := eng.GetBlankPosition()
	input := strings.Builder{}
	input.WriteString(strings.Join([]string{
		itoa(blank.Row+1) + " " + itoa(blank.Col+1),
		"0",
	}, "\n") + "\n")

	var out strings.Builder
	if err := runConsole(eng, strings.NewReader(input.String()), &out); err != nil {
		t.Fatalf("runConsole returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "That tile can't move") {
		t.Errorf("Expected rejection message, got:\n%s", output)
	}
	if eng.GetMoves() != 0 {
		t.Errorf("Expected 0 moves after rejected move, got %d", eng.GetMoves())
	}
}

func TestRunConsole_SuccessfulMoveCounts(t *testing.T) {
	eng := testEngine(t)

	movable := eng.GetMovableTiles()
	if len(movable) == 0 {
		t.Fatal("Expected at least one movable tile")
	}
	target := movable[0]

	input := itoa(target.Row+1) + " " + itoa(target.Col+1) + "\n0\n"

	var out strings.Builder
	if err := runConsole(eng, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runConsole returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Moves: 1") {
		t.Errorf("Expected move counter at 1, got:\n%s", output)
	}
	if eng.GetMoves() != 1 {
		t.Errorf("Expected 1 move, got %d", eng.GetMoves())
	}
}

func TestRunConsole_Victory(t *testing.T) {
	eng := testEngine(t)

	// One slide away from solved: tile 8 at (2,2) into the blank at (2,1).
	state := &engine.GameState{
		Grid: [][]int{
			{1, 2, 3},
			{4, 5, 6},
			{7, 0, 8},
		},
		Size:        3,
		BlankPos:    engine.Position{Row: 2, Col: 1},
		Status:      engine.StatusPlaying,
		Message:     "Almost there",
		ConfigName:  "Test Puzzle",
		MoveHistory: []engine.MoveHistoryEntry{},
	}
	if err := eng.SetState(state); err != nil {
		t.Fatalf("Failed to set state: %v", err)
	}

	var out strings.Builder
	if err := runConsole(eng, strings.NewReader("3 3\n"), &out); err != nil {
		t.Fatalf("runConsole returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Solved in 1 moves!") {
		t.Errorf("Expected victory message, got:\n%s", output)
	}
	if !eng.IsWon() {
		t.Error("Expected engine to report won")
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
