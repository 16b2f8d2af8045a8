// Package deck draws the next piece for the player. It is the only place
// randomness enters the game; the board and shapes stay deterministic.
package deck

import (
	"github.com/plus3/blockfit/catalog"
	"github.com/plus3/blockfit/shape"
	"lukechampine.com/frand"
)

// Source picks a uniformly random integer in [0, n).
type Source interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int { return frand.Intn(n) }

// Deck samples shapes from a catalog and paints them with a playable color.
type Deck struct {
	catalog *catalog.Catalog
	colors  []shape.Color
	rng     Source
}

// Option configures a Deck.
type Option func(*Deck)

// WithSource replaces the default cryptographic source.
func WithSource(src Source) Option {
	return func(d *Deck) { d.rng = src }
}

// WithColors restricts the colors pieces are painted with.
func WithColors(colors ...shape.Color) Option {
	return func(d *Deck) { d.colors = colors }
}

// New returns a deck over c.
func New(c *catalog.Catalog, opts ...Option) *Deck {
	d := &Deck{
		catalog: c,
		colors:  shape.Playable,
		rng:     frandSource{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next draws a random catalog shape with a random color.
func (d *Deck) Next() shape.Shape {
	s := d.catalog.At(d.rng.Intn(d.catalog.Len()))
	return s.WithColor(d.colors[d.rng.Intn(len(d.colors))])
}
