package catalog_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfit/catalog"
	"github.com/plus3/blockfit/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	c, err := catalog.Build(catalog.Defaults)
	require.NoError(t, err)
	assert.Equal(t, 25, c.Len())

	seen := map[uint64]int{}
	for i, s := range c.All() {
		prev, dup := seen[s.Key()]
		assert.False(t, dup, "shape %d duplicates shape %d\n%s", i, prev, s)
		seen[s.Key()] = i

		j, ok := c.Lookup(s)
		require.True(t, ok)
		assert.Equal(t, i, j)
	}

	// Catalog order follows pattern order, base shape first.
	assert.Equal(t, "##\n##", c.At(0).String())
	assert.Equal(t, "square2", c.Name(0))
	assert.Equal(t, "####", c.At(1).String())
	assert.Equal(t, "#\n#\n#\n#", c.At(2).String())
	assert.Equal(t, "line4", c.Name(2))
}

func TestBuildDeduplicatesAcrossPatterns(t *testing.T) {
	c, err := catalog.Build([]catalog.Pattern{
		{Name: "horizontal", Width: 2, Height: 1, Pattern: "##"},
		{Name: "vertical", Width: 1, Height: 2, Pattern: "##"},
		{Name: "dot", Width: 1, Height: 1, Pattern: "#"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "horizontal", c.Name(1))
	assert.Equal(t, "dot", c.Name(2))
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		patterns []catalog.Pattern
		index    int
		want     error
	}{
		{
			name: "wrong length",
			patterns: []catalog.Pattern{
				{Name: "ok", Width: 1, Height: 1, Pattern: "#"},
				{Name: "short", Width: 2, Height: 2, Pattern: "###"},
			},
			index: 1,
			want:  shape.ErrPatternLength,
		},
		{
			name:     "oversize",
			patterns: []catalog.Pattern{{Name: "wide", Width: 9, Height: 1, Pattern: strings.Repeat("#", 9)}},
			index:    0,
			want:     shape.ErrPatternSize,
		},
		{
			name:     "bad char",
			patterns: []catalog.Pattern{{Name: "typo", Width: 2, Height: 1, Pattern: "#o"}},
			index:    0,
			want:     shape.ErrPatternChar,
		},
		{
			name: "empty mask",
			patterns: []catalog.Pattern{
				{Width: 1, Height: 1, Pattern: "#"},
				{Width: 1, Height: 1, Pattern: "#"},
				{Width: 2, Height: 1, Pattern: ".."},
			},
			index: 2,
			want:  catalog.ErrEmptyPattern,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Build(tt.patterns)
			assert.Nil(t, c)
			require.ErrorIs(t, err, tt.want)

			var berr *catalog.BuildError
			require.ErrorAs(t, err, &berr)
			assert.Equal(t, tt.index, berr.Index)
			assert.Equal(t, tt.patterns[tt.index].Name, berr.Name)
		})
	}

	t.Run("no patterns", func(t *testing.T) {
		_, err := catalog.Build(nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() {
			catalog.MustBuild([]catalog.Pattern{{Width: 1, Height: 1, Pattern: "x"}})
		})
	})
}

func TestDecode(t *testing.T) {
	const doc = `
[[shape]]
name = "l"
rows = ["###", "..#"]

[[shape]]
name = "dot"
width = 1
height = 1
pattern = "#"
`
	c, err := catalog.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, "###\n..#", c.At(0).String())
	assert.Equal(t, "dot", c.Name(4))
}

func TestDecodeErrors(t *testing.T) {
	t.Run("ragged rows", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader(`
[[shape]]
name = "ragged"
rows = ["##", "#"]
`))
		assert.ErrorIs(t, err, shape.ErrPatternLength)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader("[[shape"))
		assert.Error(t, err)
	})

	t.Run("unknown key in an entry", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader(`
[[shape]]
name = "dot"
rows = ["#"]

[[shape]]
name = "bar"
width = 2
height = 1
patern = "##"
`))
		require.ErrorIs(t, err, catalog.ErrUnknownKey)
		var be *catalog.BuildError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, 1, be.Index)
		assert.Equal(t, "bar", be.Name)
		assert.Contains(t, err.Error(), `"patern"`)
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader(`
version = 2

[[shape]]
name = "dot"
rows = ["#"]
`))
		assert.ErrorIs(t, err, catalog.ErrUnknownKey)
		assert.Contains(t, err.Error(), "version")
	})
}

func TestLoad(t *testing.T) {
	_, err := catalog.Load("testdata/missing.toml")
	assert.Error(t, err)

	c, err := catalog.Load("testdata/tetrominoes.toml")
	require.NoError(t, err)
	// I, O, T, S, Z, J, L with their distinct rotations.
	assert.Equal(t, 19, c.Len())
}
