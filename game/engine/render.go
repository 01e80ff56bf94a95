package engine

import (
	"fmt"
	"strings"
)

// RenderGrid renders the grid as a bordered text table with 3-character-wide
// numeric cells. The blank cell renders empty. All text front-ends share this
// format so the puzzle looks identical everywhere.
func RenderGrid(grid [][]int) string {
	n := len(grid)

	var b strings.Builder
	border := "+" + strings.Repeat("---+", n)

	for _, row := range grid {
		b.WriteString(border)
		b.WriteByte('\n')
		b.WriteByte('|')
		for _, v := range row {
			if v == Blank {
				b.WriteString("   ")
			} else {
				fmt.Fprintf(&b, "%3d", v)
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	return b.String()
}

// SizeLabel resolves the display label for a size from a config's label table,
// falling back to "NxN" when no label is defined. Difficulty naming is purely
// presentational; the engine itself only knows the integer size.
func SizeLabel(config *PuzzleConfig, size int) string {
	if config != nil {
		if label, ok := config.Labels[fmt.Sprintf("%d", size)]; ok {
			return label
		}
	}
	return fmt.Sprintf("%dx%d", size, size)
}
