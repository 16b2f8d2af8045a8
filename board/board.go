// Package board implements the fixed 20x20 play surface and the placement
// check that overlays a shape on it.
package board

import (
	"errors"
	"iter"
	"strings"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/shape"
)

// Board dimensions in cells.
const (
	Width  = 20
	Height = 20
)

// Dims is the grid.Size shared by the board and every placement result.
type Dims struct{}

// Dims returns the board dimensions.
func (Dims) Dims() (int, int) { return Width, Height }

var (
	// ErrInfeasible is returned when committing a placement that did not succeed.
	ErrInfeasible = errors.New("placement is not feasible")
	// ErrOverlayColor is returned when committing with a color reserved for overlays.
	ErrOverlayColor = errors.New("color cannot be placed on the board")
)

// Tile is an optional color. The zero value is an unoccupied tile.
type Tile struct {
	Color  shape.Color
	Filled bool
}

// Board holds the placed tiles. The zero value is an empty board.
type Board struct {
	tiles grid.Grid[Tile, Dims]
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Tile returns the tile at column x, row y.
func (b *Board) Tile(x, y int) (Tile, error) {
	return b.tiles.Get(y, x)
}

// Occupied returns the number of filled tiles.
func (b *Board) Occupied() int {
	n := 0
	for _, t := range b.tiles.All() {
		if t.Filled {
			n++
		}
	}
	return n
}

// Tiles iterates every tile in row-major order.
func (b *Board) Tiles() iter.Seq2[grid.Point, Tile] {
	return b.tiles.All()
}

// Reset clears every tile.
func (b *Board) Reset() {
	b.tiles.Fill(Tile{})
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{tiles: b.tiles.Clone()}
}

// Commit writes color into every cell the placement marked as fitting and
// returns how many tiles were written. Cells marked Intersects or Blank are
// left as they are. A placement that did not succeed is rejected with
// ErrInfeasible and the board is not modified.
//
// Each accepted placement must be committed at most once.
func (b *Board) Commit(p Superimposition, color shape.Color) (int, error) {
	if !p.Success {
		return 0, ErrInfeasible
	}
	if color == shape.Transparent {
		return 0, ErrOverlayColor
	}

	n := 0
	for pt, status := range p.cells.All() {
		if status != Fits {
			continue
		}
		b.tiles.Put(pt.Row, pt.Col, Tile{Color: color, Filled: true})
		n++
	}
	return n, nil
}

// String renders filled tiles as '#' and empty ones as '.', one line per row
// with no trailing newline.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for pt, t := range b.tiles.All() {
		if pt.Col == 0 && pt.Row > 0 {
			sb.WriteByte('\n')
		}
		if t.Filled {
			sb.WriteByte(shape.Filled)
		} else {
			sb.WriteByte(shape.Empty)
		}
	}
	return sb.String()
}
