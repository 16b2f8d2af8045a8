// Package view maps between screen pixels and board space and picks the
// colors the play window draws with.
package view

import (
	"image/color"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
)

// Layout places the board on screen. The board's top-left tile is at the
// origin and row 0 is the top row.
type Layout struct {
	TileSize int
}

// Size returns the board's size in pixels.
func (l Layout) Size() (width, height int) {
	return board.Width * l.TileSize, board.Height * l.TileSize
}

// Anchor converts a pointer position to a normalized board anchor. Positions
// outside the board map outside [0, 1].
func (l Layout) Anchor(px, py int) board.Anchor {
	w, h := l.Size()
	return board.Anchor{
		X: float64(px) / float64(w),
		Y: float64(py) / float64(h),
	}
}

// TileOrigin returns the top-left pixel of the tile at column x, row y.
func (l Layout) TileOrigin(x, y int) (float32, float32) {
	return float32(x * l.TileSize), float32(y * l.TileSize)
}

// Palette returns the opaque RGBA for c.
func Palette(c shape.Color) color.RGBA {
	switch c {
	case shape.Red:
		return color.RGBA{R: 0xff, A: 0xff}
	case shape.Green:
		return color.RGBA{G: 0xff, A: 0xff}
	case shape.Blue:
		return color.RGBA{B: 0xff, A: 0xff}
	case shape.Transparent:
		return color.RGBA{}
	default:
		return color.RGBA{R: 0x4d, G: 0x4d, B: 0x4d, A: 0xff}
	}
}

// TileColor returns the color a board tile is drawn with.
func TileColor(t board.Tile) color.RGBA {
	if !t.Filled {
		return Palette(shape.Gray)
	}
	return Palette(t.Color)
}

// OverlayColor returns the color drawn over a board cell for a placement
// status while piece is held. Blank cells get the transparent color.
func OverlayColor(s board.Status, piece shape.Color) color.RGBA {
	switch s {
	case board.Fits:
		return WithAlpha(Palette(piece), 0x80)
	case board.Intersects:
		return WithAlpha(Palette(shape.Red), 0x80)
	default:
		return Palette(shape.Transparent)
	}
}

// WithAlpha returns c at alpha a, premultiplied as color.RGBA requires.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(a) / 0xff)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
