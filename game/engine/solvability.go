package engine

// CountInversions counts pairs of tiles whose row-major order contradicts
// their canonical numeric order. The blank is excluded from the flatten.
func CountInversions(grid [][]int) int {
	flat := flattenNonBlank(grid)

	inversions := 0
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}
	return inversions
}

// IsSolvable reports whether the grid is reachable from the canonical solved
// arrangement via legal sliding moves, using the standard 15-puzzle parity
// theorem:
//
//   - odd N: solvable iff the inversion count is even
//   - even N: solvable iff inversions + the blank's row counted from the
//     bottom (bottom row = 1) is odd
func IsSolvable(grid [][]int) bool {
	n := len(grid)
	inversions := CountInversions(grid)

	if n%2 == 1 {
		return inversions%2 == 0
	}

	blankRowFromBottom := n - LocateBlank(grid).Row
	return (inversions+blankRowFromBottom)%2 == 1
}

// MakeSolvable repairs an unsolvable grid by swapping the first two non-blank
// cells in row-major order. A single transposition of two distinct tiles flips
// the inversion parity, so one swap is always sufficient; the generation flow
// never applies it more than once.
func MakeSolvable(grid [][]int) {
	var cells []Position
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] != Blank {
				cells = append(cells, Position{Row: row, Col: col})
				if len(cells) == 2 {
					a, b := cells[0], cells[1]
					grid[a.Row][a.Col], grid[b.Row][b.Col] = grid[b.Row][b.Col], grid[a.Row][a.Col]
					return
				}
			}
		}
	}
}

// flattenNonBlank returns the grid's tiles in row-major order with the blank
// removed.
func flattenNonBlank(grid [][]int) []int {
	flat := make([]int, 0, len(grid)*len(grid)-1)
	for _, row := range grid {
		for _, v := range row {
			if v != Blank {
				flat = append(flat, v)
			}
		}
	}
	return flat
}
