package engine

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestShuffleGrid_StaysSolvable(t *testing.T) {
	for n := MinPuzzleSize; n <= 6; n++ {
		for seed := int64(0); seed < 5; seed++ {
			grid := NewSolvedGrid(n)
			rng := rand.New(rand.NewSource(seed))

			blank := ShuffleGrid(grid, rng, DefaultShuffleFactor)

			if !IsPermutation(grid) {
				t.Errorf("Size %d seed %d: shuffled grid is not a permutation: %v", n, seed, grid)
			}
			if !IsSolvable(grid) {
				t.Errorf("Size %d seed %d: shuffled grid is not solvable: %v", n, seed, grid)
			}
			if located := LocateBlank(grid); located != blank {
				t.Errorf("Size %d seed %d: reported blank (%d,%d) but grid blank is (%d,%d)",
					n, seed, blank.Row, blank.Col, located.Row, located.Col)
			}
		}
	}
}

func TestShuffleGrid_Deterministic(t *testing.T) {
	a := NewSolvedGrid(4)
	b := NewSolvedGrid(4)

	ShuffleGrid(a, rand.New(rand.NewSource(42)), DefaultShuffleFactor)
	ShuffleGrid(b, rand.New(rand.NewSource(42)), DefaultShuffleFactor)

	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical shuffles for identical seeds")
	}
}

func TestShuffleGrid_ActuallyMoves(t *testing.T) {
	grid := NewSolvedGrid(4)
	ShuffleGrid(grid, rand.New(rand.NewSource(7)), DefaultShuffleFactor)

	if IsSolvedGrid(grid) {
		t.Error("Expected a 160-step walk to leave the solved arrangement")
	}
}

func TestShuffleGrid_ZeroFactorUsesDefault(t *testing.T) {
	grid := NewSolvedGrid(3)
	ShuffleGrid(grid, rand.New(rand.NewSource(7)), 0)

	if IsSolvedGrid(grid) {
		t.Error("Expected factor 0 to fall back to the default and still shuffle")
	}
}
