package board

import (
	"iter"
	"math"
	"strings"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/shape"
)

// Status classifies a board cell under a candidate placement.
type Status uint8

const (
	// Blank cells are not covered by the shape.
	Blank Status = iota
	// Fits marks a covered cell that is free.
	Fits
	// Intersects marks a covered cell that is already occupied.
	Intersects
)

func (s Status) String() string {
	switch s {
	case Blank:
		return "blank"
	case Fits:
		return "fits"
	case Intersects:
		return "intersects"
	default:
		return "unknown"
	}
}

// Anchor is a position across the board normalized to [0, 1] on both axes.
// X runs along the columns and Y along the rows.
type Anchor struct {
	X, Y float64
}

// Superimposition is the result of overlaying a shape on the board. It is a
// snapshot: the per-cell statuses are read-only, so copies never diverge.
type Superimposition struct {
	cells   grid.Grid[Status, Dims]
	Success bool
}

// Status returns the status of the cell at column x, row y.
func (p Superimposition) Status(x, y int) (Status, error) {
	return p.cells.Get(y, x)
}

// All iterates every cell status in row-major order.
func (p Superimposition) All() iter.Seq2[grid.Point, Status] {
	return p.cells.All()
}

// Count returns the number of cells carrying status s.
func (p Superimposition) Count(s Status) int {
	n := 0
	for _, v := range p.cells.All() {
		if v == s {
			n++
		}
	}
	return n
}

// String renders the overlay with '.' for Blank, '#' for Fits and 'x' for
// Intersects, one line per row.
func (p Superimposition) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for pt, v := range p.cells.All() {
		if pt.Col == 0 && pt.Row > 0 {
			sb.WriteByte('\n')
		}
		switch v {
		case Fits:
			sb.WriteByte('#')
		case Intersects:
			sb.WriteByte('x')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// RoundCoord maps a continuous board coordinate to a cell index. Ties round
// half away from zero, so 9.5 maps to 10 and -0.5 maps to -1.
func RoundCoord(v float64) int {
	return int(math.Round(v))
}

// Superimpose centers s on the anchor and reports, for each cell the shape
// covers, whether it fits. Cells of the shape that fall off the board are not
// marked anywhere but still fail the placement. Every shape cell is examined,
// so the result shows all conflicts at once. The board is not modified.
func (b *Board) Superimpose(s shape.Shape, a Anchor) Superimposition {
	bw, bh := s.Bounds()
	offsetX := a.X*Width - float64(bw)/2
	offsetY := a.Y*Height - float64(bh)/2

	result := Superimposition{Success: true}
	for x, y := range s.Cells() {
		col := RoundCoord(float64(x) + offsetX)
		row := RoundCoord(float64(y) + offsetY)

		switch {
		case !result.cells.Contains(row, col):
			result.Success = false
		case b.tiles.At(row, col).Filled:
			result.cells.Put(row, col, Intersects)
			result.Success = false
		default:
			result.cells.Put(row, col, Fits)
		}
	}
	return result
}
