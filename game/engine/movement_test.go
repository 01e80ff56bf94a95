package engine

import (
	"reflect"
	"testing"
)

// stateFromGrid builds a playing GameState around a fixture grid.
func stateFromGrid(grid [][]int) *GameState {
	return &GameState{
		Grid:        grid,
		Size:        len(grid),
		BlankPos:    LocateBlank(grid),
		Solvable:    IsSolvable(grid),
		Status:      StatusPlaying,
		MoveHistory: []MoveHistoryEntry{},
	}
}

func TestCanMoveTile(t *testing.T) {
	// Blank at (2,2)
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"tile above blank", 1, 2, true},
		{"tile left of blank", 2, 1, true},
		{"blank itself", 2, 2, false},
		{"diagonal to blank", 1, 1, false},
		{"far tile", 0, 0, false},
		{"row out of bounds", 3, 2, false},
		{"negative col", 2, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gs.CanMoveTile(tt.row, tt.col); got != tt.want {
				t.Errorf("CanMoveTile(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestCanMoveTile_MatchesAdjacency(t *testing.T) {
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})

	for row := 0; row < gs.Size; row++ {
		for col := 0; col < gs.Size; col++ {
			target := Position{Row: row, Col: col}
			want := target != gs.BlankPos && IsAdjacent(target, gs.BlankPos)
			if got := gs.CanMoveTile(row, col); got != want {
				t.Errorf("CanMoveTile(%d,%d) = %v, adjacency says %v", row, col, got, want)
			}
		}
	}
}

func TestMoveTile_SwapsAndCounts(t *testing.T) {
	config := DefaultPuzzleConfig()
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})

	if !gs.MoveTile(2, 2, config) {
		t.Fatal("Expected move of tile adjacent to blank to succeed")
	}

	if gs.Grid[2][1] != 8 || gs.Grid[2][2] != Blank {
		t.Errorf("Expected tile 8 to slide left, got %v", gs.Grid)
	}
	if gs.BlankPos != (Position{Row: 2, Col: 2}) {
		t.Errorf("Expected blank at (2,2), got (%d,%d)", gs.BlankPos.Row, gs.BlankPos.Col)
	}
	if gs.Moves != 1 {
		t.Errorf("Expected move counter 1, got %d", gs.Moves)
	}
	if gs.Status != StatusWon {
		t.Errorf("Expected winning move to set status won, got %s", gs.Status)
	}
}

func TestMoveTile_RejectedLeavesStateUnchanged(t *testing.T) {
	config := DefaultPuzzleConfig()
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})

	before := CloneGrid(gs.Grid)
	blankBefore := gs.BlankPos

	for _, target := range []Position{{0, 0}, {1, 1}, {3, 0}, {-1, 2}, {2, 2}} {
		if gs.MoveTile(target.Row, target.Col, config) {
			t.Errorf("Expected move to (%d,%d) to be rejected", target.Row, target.Col)
		}
	}

	if !reflect.DeepEqual(gs.Grid, before) {
		t.Error("Expected rejected moves to leave the grid unchanged")
	}
	if gs.BlankPos != blankBefore {
		t.Error("Expected rejected moves to leave the blank position unchanged")
	}
	if gs.Moves != 0 {
		t.Errorf("Expected rejected moves not to count, got %d", gs.Moves)
	}
}

func TestMoveTile_InverseRoundTrip(t *testing.T) {
	config := DefaultPuzzleConfig()
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})

	before := CloneGrid(gs.Grid)

	// Slide tile 2 down into the blank, then back up
	if !gs.MoveTile(0, 1, config) {
		t.Fatal("Expected first move to succeed")
	}
	if !gs.MoveTile(1, 1, config) {
		t.Fatal("Expected inverse move to succeed")
	}

	if !reflect.DeepEqual(gs.Grid, before) {
		t.Errorf("Expected grid restored after inverse move, got %v", gs.Grid)
	}
	if gs.Moves != 2 {
		t.Errorf("Expected move counter incremented by 2, got %d", gs.Moves)
	}
}

func TestMoveTile_NotPlaying(t *testing.T) {
	config := DefaultPuzzleConfig()
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})
	gs.Status = StatusPaused

	if gs.MoveTile(0, 1, config) {
		t.Error("Expected move on a paused session to be rejected")
	}
}

func TestMovableTiles(t *testing.T) {
	// Blank in a corner: exactly two movable tiles
	gs := stateFromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})
	tiles := gs.MovableTiles()
	if len(tiles) != 2 {
		t.Fatalf("Expected 2 movable tiles for corner blank, got %d", len(tiles))
	}

	// Blank in the center: all four neighbors qualify
	gs = stateFromGrid([][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})
	tiles = gs.MovableTiles()
	if len(tiles) != 4 {
		t.Fatalf("Expected 4 movable tiles for center blank, got %d", len(tiles))
	}
	for _, p := range tiles {
		if !IsAdjacent(p, gs.BlankPos) {
			t.Errorf("Movable tile (%d,%d) is not adjacent to the blank", p.Row, p.Col)
		}
	}
}
