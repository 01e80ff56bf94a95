package engine

import "math/rand"

// shuffleDirections are the four axis steps the blank can take during a walk.
var shuffleDirections = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// ShuffleGrid randomizes the grid in place by walking the blank tile through
// size*size*factor legal moves, and returns the blank's final position.
// Because every step is itself a legal move, the result stays in the same
// solvability class as the input. Each iteration tries the four directions in
// a randomized order and takes the first one that stays in bounds, which
// mixes better on small grids than retrying a single random direction.
//
// The caller supplies the random source so tests can seed it.
func ShuffleGrid(grid [][]int, rng *rand.Rand, factor int) Position {
	n := len(grid)
	if factor <= 0 {
		factor = DefaultShuffleFactor
	}

	blank := LocateBlank(grid)
	order := []int{0, 1, 2, 3}

	for i := 0; i < n*n*factor; i++ {
		rng.Shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})

		for _, d := range order {
			next := Position{
				Row: blank.Row + shuffleDirections[d].Row,
				Col: blank.Col + shuffleDirections[d].Col,
			}
			if next.Row < 0 || next.Row >= n || next.Col < 0 || next.Col >= n {
				continue
			}
			grid[blank.Row][blank.Col] = grid[next.Row][next.Col]
			grid[next.Row][next.Col] = Blank
			blank = next
			break
		}
	}

	return blank
}
