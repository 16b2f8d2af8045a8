// Package catalog builds the read-only set of canonical shapes pieces are
// drawn from: every rotational equivalent of a list of authored patterns,
// with duplicate masks removed.
package catalog

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfit/shape"
)

// Pattern is an authored base shape in the '#'/'.' notation.
type Pattern struct {
	Name    string `toml:"name"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Pattern string `toml:"pattern"`
}

// Shape parses the pattern.
func (p Pattern) Shape() (shape.Shape, error) {
	return shape.FromPattern(p.Width, p.Height, p.Pattern)
}

// BuildError reports the pattern that stopped a catalog from being built.
type BuildError struct {
	Index int
	Name  string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("catalog pattern %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("catalog pattern %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Catalog is an ordered list of distinct shapes. It is never modified after
// Build returns, so it may be shared freely.
type Catalog struct {
	shapes []shape.Shape
	names  []string
	index  *intmap.Map[uint64, int]
}

// Build expands every pattern into its rotations, in pattern order, keeping
// the first occurrence of each mask. It fails on the first pattern that does
// not parse.
func Build(patterns []Pattern) (*Catalog, error) {
	c := &Catalog{
		shapes: make([]shape.Shape, 0, len(patterns)*4),
		names:  make([]string, 0, len(patterns)*4),
		index:  intmap.New[uint64, int](max(len(patterns)*4, 8)),
	}

	for i, p := range patterns {
		base, err := p.Shape()
		if err != nil {
			return nil, &BuildError{Index: i, Name: p.Name, Err: err}
		}
		if base.Size() == 0 {
			return nil, &BuildError{Index: i, Name: p.Name, Err: ErrEmptyPattern}
		}

		for _, s := range base.Equivalents() {
			key := s.Key()
			if _, ok := c.index.Get(key); ok {
				continue
			}
			c.index.Put(key, len(c.shapes))
			c.shapes = append(c.shapes, s)
			c.names = append(c.names, p.Name)
		}
	}

	if len(c.shapes) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(patterns []Pattern) *Catalog {
	c, err := Build(patterns)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of distinct shapes.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// At returns the i-th shape.
func (c *Catalog) At(i int) shape.Shape {
	return c.shapes[i]
}

// Name returns the name of the pattern the i-th shape was generated from.
func (c *Catalog) Name(i int) string {
	return c.names[i]
}

// Lookup returns the position of the shape with the same mask as s.
func (c *Catalog) Lookup(s shape.Shape) (int, bool) {
	return c.index.Get(s.Key())
}

// All iterates the shapes in catalog order.
func (c *Catalog) All() iter.Seq2[int, shape.Shape] {
	return func(yield func(int, shape.Shape) bool) {
		for i, s := range c.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}
