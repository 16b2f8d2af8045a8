// Package grid provides a dense two-dimensional container whose dimensions
// are fixed by a type parameter.
//
// The dimensions are carried by a Size type, usually an empty struct:
//
//	type Board struct{}
//
//	func (Board) Dims() (int, int) { return 20, 20 }
//
//	var tiles grid.Grid[Tile, Board]
//
// Two grids instantiated with the same Size always agree in width and height,
// so per-cell results computed for one can be indexed against the other
// without further checks.
package grid

import (
	"errors"
	"fmt"
	"iter"
)

// Size reports the fixed width and height of a grid. Implementations must
// return the same positive values for every call, including on the zero value.
type Size interface {
	Dims() (width, height int)
}

// ErrOutOfBounds is matched by every OutOfBoundsError.
var ErrOutOfBounds = errors.New("grid index out of bounds")

// OutOfBoundsError reports access to a cell outside the declared dimensions.
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid index (row %d, col %d) out of bounds for %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Point addresses a single cell.
type Point struct {
	Row, Col int
}

// Grid stores one T per cell in row-major order. The zero value is a grid of
// zero-valued cells ready for use. Storage is allocated on first write and
// is shared by plain assignment after that; copy a Grid with Clone.
type Grid[T any, S Size] struct {
	cells []T
}

// New returns a grid with every cell set to fill.
func New[T any, S Size](fill T) Grid[T, S] {
	var g Grid[T, S]
	g.Fill(fill)
	return g
}

// Dims returns the grid's width and height.
func (g Grid[T, S]) Dims() (width, height int) {
	var s S
	return s.Dims()
}

// Contains reports whether row, col lies inside the grid.
func (g Grid[T, S]) Contains(row, col int) bool {
	w, h := g.Dims()
	return row >= 0 && row < h && col >= 0 && col < w
}

func (g Grid[T, S]) index(row, col int) (int, error) {
	w, h := g.Dims()
	if row < 0 || row >= h || col < 0 || col >= w {
		return 0, &OutOfBoundsError{Row: row, Col: col, Width: w, Height: h}
	}
	return row*w + col, nil
}

func (g *Grid[T, S]) alloc() {
	if g.cells == nil {
		w, h := g.Dims()
		g.cells = make([]T, w*h)
	}
}

// Get returns the cell at row, col.
func (g Grid[T, S]) Get(row, col int) (T, error) {
	i, err := g.index(row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	if g.cells == nil {
		var zero T
		return zero, nil
	}
	return g.cells[i], nil
}

// Set stores v at row, col.
func (g *Grid[T, S]) Set(row, col int, v T) error {
	i, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.alloc()
	g.cells[i] = v
	return nil
}

// At is like Get but panics with an *OutOfBoundsError for coordinates
// outside the grid.
func (g Grid[T, S]) At(row, col int) T {
	v, err := g.Get(row, col)
	if err != nil {
		panic(err)
	}
	return v
}

// Put is like Set but panics with an *OutOfBoundsError for coordinates
// outside the grid.
func (g *Grid[T, S]) Put(row, col int, v T) {
	if err := g.Set(row, col, v); err != nil {
		panic(err)
	}
}

// Fill sets every cell to v.
func (g *Grid[T, S]) Fill(v T) {
	g.alloc()
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a copy that shares no storage with g.
func (g Grid[T, S]) Clone() Grid[T, S] {
	var c Grid[T, S]
	if g.cells != nil {
		c.cells = make([]T, len(g.cells))
		copy(c.cells, g.cells)
	}
	return c
}

// All iterates every cell in row-major order.
func (g Grid[T, S]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		w, h := g.Dims()
		var zero T
		for row := range h {
			for col := range w {
				v := zero
				if g.cells != nil {
					v = g.cells[row*w+col]
				}
				if !yield(Point{Row: row, Col: col}, v) {
					return
				}
			}
		}
	}
}
