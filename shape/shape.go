// Package shape implements polyomino pieces as fixed-capacity occupancy masks
// with bounding-box, rotation and rotational equivalence operations.
package shape

import (
	"iter"
	"strings"

	"github.com/samber/lo"
)

// MaxSize is the largest width or height a shape may occupy.
const MaxSize = 8

type mask [MaxSize][MaxSize]bool

// Shape is an immutable polyomino variant: an occupancy mask plus a color.
// Cells outside the tight bounding box are always unset. Shapes are
// comparable; two shapes are equal when both mask and color match.
type Shape struct {
	color Color
	cells mask
}

// Color returns the shape's color tag.
func (s Shape) Color() Color {
	return s.color
}

// WithColor returns a copy of the shape carrying color c.
func (s Shape) WithColor(c Color) Shape {
	s.color = c
	return s
}

// Occupied reports whether the cell at column x, row y is part of the shape.
// Coordinates outside the mask report false.
func (s Shape) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= MaxSize || y >= MaxSize {
		return false
	}
	return s.cells[y][x]
}

// Bounds returns the tight bounding box: one past the largest occupied column
// and one past the largest occupied row. An empty shape reports (0, 0).
func (s Shape) Bounds() (width, height int) {
	for i, row := range s.cells {
		rowWidth := 0
		for j, set := range row {
			if set {
				rowWidth = j + 1
			}
		}
		if rowWidth > 0 {
			width = max(width, rowWidth)
			height = i + 1
		}
	}
	return width, height
}

// Size returns the number of occupied cells.
func (s Shape) Size() int {
	n := 0
	for _, row := range s.cells {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}

// Cells iterates the occupied cells in row-major order as (x, y) pairs.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y, row := range s.cells {
			for x, set := range row {
				if set && !yield(x, y) {
					return
				}
			}
		}
	}
}

// Key packs the mask into a bitmask, bit y*MaxSize+x set for every occupied
// cell. Two shapes have equal keys exactly when their masks are equal.
func (s Shape) Key() uint64 {
	var key uint64
	for x, y := range s.Cells() {
		key |= 1 << uint(y*MaxSize+x)
	}
	return key
}

// Rotate90 returns the shape rotated a quarter turn clockwise. The cell at
// row i, column j of the bounding box moves to row j, column height-1-i.
// Empty leading rows or columns are not preserved by the turn.
func (s Shape) Rotate90() Shape {
	width, height := s.Bounds()
	rotated := Shape{color: s.color}
	for i := range height {
		for j := range width {
			rotated.cells[j][height-1-i] = s.cells[i][j]
		}
	}
	return rotated
}

// Equivalents returns the distinct masks reachable by rotating the shape,
// starting with the shape itself. Each further rotation is kept only when it
// matches none of the shapes collected so far, so the result holds between
// one and four shapes.
func (s Shape) Equivalents() []Shape {
	shapes := []Shape{s}
	current := s
	for range 3 {
		current = current.Rotate90()
		if !lo.Contains(shapes, current) {
			shapes = append(shapes, current)
		}
	}
	return shapes
}

// String renders the mask within its bounding box using '#' for occupied and
// '.' for empty cells, one line per row with no trailing newline.
func (s Shape) String() string {
	width, height := s.Bounds()
	var b strings.Builder
	b.Grow(height * (width + 1))
	for i := range height {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := range width {
			if s.cells[i][j] {
				b.WriteByte(Filled)
			} else {
				b.WriteByte(Empty)
			}
		}
	}
	return b.String()
}
