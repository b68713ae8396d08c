package vmath

import (
	"cmp"

	"github.com/mattn/go-runewidth"
)

// Sizer reports a surface size in cells as (rows, columns)
type Sizer interface {
	Size() (rows, cols int)
}

// --- Bounds ---

// MaxDrawableBounds returns the largest addressable row and column of s
// Size minus one on each axis; border cells sit on these indices
func MaxDrawableBounds(s Sizer) (maxRow, maxCol int) {
	rows, cols := s.Size()
	return rows - 1, cols - 1
}

// Clamp constrains v to [lo, hi]; lo wins when the range is inverted
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Inside reports whether (row, col) lies strictly inside (0, maxRow) x (0, maxCol)
func Inside(row, col, maxRow, maxCol float64) bool {
	return 0 < row && row < maxRow && 0 < col && col < maxCol
}

// Contains reports whether the integer cell is addressable on a rows x cols surface
func Contains(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// --- Measurement ---

// Measure returns the extent of a text frame in terminal cells
// Columns use display width so wide runes count as two cells
func Measure(lines []string) (rows, cols int) {
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > cols {
			cols = w
		}
	}
	return len(lines), cols
}
