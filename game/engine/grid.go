package engine

import "fmt"

// NewSolvedGrid creates the canonical solved arrangement for an n x n puzzle:
// row-major 1..n*n-1 with the blank (0) in the bottom-right cell.
func NewSolvedGrid(n int) [][]int {
	grid := make([][]int, n)
	for row := range grid {
		grid[row] = make([]int, n)
		for col := range grid[row] {
			grid[row][col] = row*n + col + 1
		}
	}
	grid[n-1][n-1] = Blank
	return grid
}

// CloneGrid returns a deep copy of the grid
func CloneGrid(grid [][]int) [][]int {
	clone := make([][]int, len(grid))
	for row := range grid {
		clone[row] = make([]int, len(grid[row]))
		copy(clone[row], grid[row])
	}
	return clone
}

// TileAt returns the tile value at (row, col). Out-of-range coordinates are a
// programming error on the caller's side, not a recoverable condition.
func TileAt(grid [][]int, row, col int) int {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		panic(fmt.Sprintf("engine: tile access out of range: (%d,%d) on %dx%d grid", row, col, len(grid), len(grid)))
	}
	return grid[row][col]
}

// SetTile writes a tile value at (row, col), with the same fail-fast bounds
// contract as TileAt.
func SetTile(grid [][]int, row, col, value int) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		panic(fmt.Sprintf("engine: tile write out of range: (%d,%d) on %dx%d grid", row, col, len(grid), len(grid)))
	}
	grid[row][col] = value
}

// LocateBlank scans for the cell holding the blank. It is used at construction
// time and by consistency checks; steady-state code tracks the blank
// incrementally on every swap instead of re-scanning.
func LocateBlank(grid [][]int) Position {
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] == Blank {
				return Position{Row: row, Col: col}
			}
		}
	}
	panic("engine: grid has no blank tile")
}

// IsAdjacent reports whether two cells touch orthogonally, i.e. their
// Manhattan distance is exactly 1.
func IsAdjacent(a, b Position) bool {
	return abs(a.Row-b.Row)+abs(a.Col-b.Col) == 1
}

// IsSolvedGrid reports whether the grid equals the canonical solved
// arrangement. It short-circuits on the first mismatch.
func IsSolvedGrid(grid [][]int) bool {
	n := len(grid)
	expected := 1
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if row == n-1 && col == n-1 {
				return grid[row][col] == Blank
			}
			if grid[row][col] != expected {
				return false
			}
			expected++
		}
	}
	return true
}

// IsPermutation reports whether the grid holds every value 0..n*n-1 exactly
// once. A failure can only come from a bug in generation or repair, so callers
// treat a false result as an internal fault.
func IsPermutation(grid [][]int) bool {
	n := len(grid)
	seen := make([]bool, n*n)
	for row := range grid {
		if len(grid[row]) != n {
			return false
		}
		for _, v := range grid[row] {
			if v < 0 || v >= n*n || seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	return true
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
