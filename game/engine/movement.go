package engine

import (
	"fmt"
	"time"
)

// CanMoveTile checks whether the tile at (row, col) can slide into the blank
// cell: the target must be in bounds, must not itself be the blank, and must
// be orthogonally adjacent to the blank.
func (gs *GameState) CanMoveTile(row, col int) bool {
	if row < 0 || row >= gs.Size || col < 0 || col >= gs.Size {
		return false
	}
	target := Position{Row: row, Col: col}
	if target == gs.BlankPos {
		return false
	}
	return IsAdjacent(target, gs.BlankPos)
}

// MoveTile attempts to slide the tile at (row, col) into the blank cell.
// A rejected move reports false and leaves the grid, blank position, and move
// counter untouched; it is expected interaction noise, not an error.
func (gs *GameState) MoveTile(row, col int, config *PuzzleConfig) bool {
	if gs.Status != StatusPlaying {
		return false
	}

	if !gs.CanMoveTile(row, col) {
		if config.Messages.MoveRejected != "" {
			gs.Message = config.Messages.MoveRejected
		}
		return false
	}

	tile := gs.Grid[row][col]
	gs.Grid[gs.BlankPos.Row][gs.BlankPos.Col] = tile
	gs.Grid[row][col] = Blank
	gs.BlankPos = Position{Row: row, Col: col}
	gs.Moves++

	if IsSolvedGrid(gs.Grid) {
		gs.Status = StatusWon
		gs.Message = fmt.Sprintf(config.Messages.Victory, gs.Moves)
	} else {
		gs.Message = fmt.Sprintf(config.Messages.MoveStatus, gs.Moves)
	}

	return true
}

// AddMoveToHistory appends a move to the cumulative history.
func (gs *GameState) AddMoveToHistory(target, blankFrom Position, tile int, success bool) {
	entry := MoveHistoryEntry{
		Target:     target,
		Tile:       tile,
		BlankFrom:  blankFrom,
		BlankTo:    gs.BlankPos,
		Timestamp:  time.Now().Unix(),
		Success:    success,
		MoveNumber: gs.TotalMoves + 1,
	}
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++
}

// MovableTiles returns the positions of the tiles that can currently slide
// into the blank cell. At most four tiles qualify.
func (gs *GameState) MovableTiles() []Position {
	var tiles []Position
	for _, d := range shuffleDirections {
		p := Position{Row: gs.BlankPos.Row + d.Row, Col: gs.BlankPos.Col + d.Col}
		if p.Row >= 0 && p.Row < gs.Size && p.Col >= 0 && p.Col < gs.Size {
			tiles = append(tiles, p)
		}
	}
	return tiles
}
