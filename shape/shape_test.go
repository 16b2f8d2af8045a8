package shape_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfit/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	t.Run("empty shape", func(t *testing.T) {
		w, h := shape.Shape{}.Bounds()
		assert.Equal(t, 0, w)
		assert.Equal(t, 0, h)
	})

	tests := []struct {
		name          string
		width, height int
		pattern       string
		wantW, wantH  int
	}{
		{"solid square", 2, 2, "####", 2, 2},
		{"horizontal line", 4, 1, "####", 4, 1},
		{"vertical line", 1, 2, "##", 1, 2},
		{"trailing empty column", 3, 2, "##.##.", 2, 2},
		{"trailing empty row", 2, 3, "###...", 2, 2},
		{"dot", 1, 1, "#", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := shape.FromPattern(tt.width, tt.height, tt.pattern)
			require.NoError(t, err)
			w, h := s.Bounds()
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestRotate90(t *testing.T) {
	t.Run("L tromino", func(t *testing.T) {
		s := shape.MustFromPattern(2, 2, "##.#")
		assert.Equal(t, ".#\n##", s.Rotate90().String())
	})

	t.Run("line turns vertical", func(t *testing.T) {
		s := shape.MustFromPattern(3, 1, "###")
		r := s.Rotate90()
		w, h := r.Bounds()
		assert.Equal(t, 1, w)
		assert.Equal(t, 3, h)
	})

	t.Run("keeps color and leaves receiver alone", func(t *testing.T) {
		s := shape.MustFromPattern(3, 2, "###..#").WithColor(shape.Green)
		before := s
		r := s.Rotate90()
		assert.Equal(t, shape.Green, r.Color())
		assert.Equal(t, before, s)
	})

	t.Run("four turns restore the mask", func(t *testing.T) {
		for _, p := range []struct {
			w, h int
			pat  string
		}{
			{2, 2, "####"},
			{4, 1, "####"},
			{2, 2, "##.#"},
			{3, 2, "###..#"},
			{3, 2, "###.#."},
			{3, 2, "##..##"},
			{5, 3, "#...#.###...#.."},
		} {
			s := shape.MustFromPattern(p.w, p.h, p.pat)
			assert.Equal(t, s, s.Rotate90().Rotate90().Rotate90().Rotate90(), p.pat)
		}
	})

	t.Run("empty shape", func(t *testing.T) {
		assert.Equal(t, shape.Shape{}, shape.Shape{}.Rotate90())
	})
}

func TestEquivalents(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		pattern string
		want    int
	}{
		{"solid square", 2, 2, "####", 1},
		{"dot", 1, 1, "#", 1},
		{"domino", 1, 2, "##", 2},
		{"line 4", 4, 1, "####", 2},
		{"S tetromino", 3, 2, "##..##", 2},
		{"L tromino", 2, 2, "##.#", 4},
		{"T tetromino", 3, 2, "###.#.", 4},
		{"L tetromino", 3, 2, "###..#", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shape.MustFromPattern(tt.w, tt.h, tt.pattern)
			eq := s.Equivalents()
			require.Len(t, eq, tt.want)
			assert.Equal(t, s, eq[0])

			seen := map[uint64]bool{}
			for _, e := range eq {
				assert.False(t, seen[e.Key()], "duplicate mask\n%s", e)
				seen[e.Key()] = true
			}
		})
	}

	t.Run("non-adjacent duplicates are dropped", func(t *testing.T) {
		// 0 and 180 degrees coincide, 90 and 270 coincide.
		eq := shape.MustFromPattern(3, 2, "##..##").Equivalents()
		require.Len(t, eq, 2)
		assert.Equal(t, eq[0], eq[1].Rotate90())
	})
}

func TestFromPattern(t *testing.T) {
	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name    string
			w, h    int
			pattern string
			want    error
		}{
			{"short", 2, 2, "###", shape.ErrPatternLength},
			{"long", 2, 2, "#####", shape.ErrPatternLength},
			{"too wide", 9, 1, "#########", shape.ErrPatternSize},
			{"too tall", 1, 9, "#########", shape.ErrPatternSize},
			{"zero width", 0, 1, "", shape.ErrPatternSize},
			{"bad char", 2, 1, "#x", shape.ErrPatternChar},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := shape.FromPattern(tt.w, tt.h, tt.pattern)
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.want)

				var perr *shape.PatternError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.pattern, perr.Pattern)
			})
		}
	})

	t.Run("largest allowed", func(t *testing.T) {
		s, err := shape.FromPattern(8, 8, strings.Repeat("#", 64))
		require.NoError(t, err)
		assert.Equal(t, 64, s.Size())
		assert.Equal(t, ^uint64(0), s.Key())
	})

	t.Run("parsed shapes are gray", func(t *testing.T) {
		assert.Equal(t, shape.Gray, shape.MustFromPattern(1, 1, "#").Color())
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() { shape.MustFromPattern(1, 1, "?") })
	})
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range []struct {
		w, h int
		pat  string
	}{
		{1, 1, "#"},
		{2, 2, "####"},
		{2, 2, "##.#"},
		{3, 2, "###..#"},
		{3, 2, "###.#."},
		{3, 3, "#.#.#.#.#"},
		{2, 3, "######"},
	} {
		s := shape.MustFromPattern(p.w, p.h, p.pat)
		rows := make([]string, 0, p.h)
		for i := 0; i < p.h; i++ {
			rows = append(rows, p.pat[i*p.w:(i+1)*p.w])
		}
		rendered := s.String()
		assert.Equal(t, strings.Join(rows, "\n"), rendered)

		back := shape.MustFromPattern(p.w, p.h, strings.ReplaceAll(rendered, "\n", ""))
		assert.Equal(t, s, back)
	}
}

func TestCellsAndKey(t *testing.T) {
	s := shape.MustFromPattern(2, 2, "#..#")
	var got [][2]int
	for x, y := range s.Cells() {
		got = append(got, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}}, got)
	assert.Equal(t, uint64(1)|uint64(1)<<(shape.MaxSize+1), s.Key())
	assert.True(t, s.Occupied(1, 1))
	assert.False(t, s.Occupied(1, 0))
	assert.False(t, s.Occupied(-1, 0))
	assert.False(t, s.Occupied(shape.MaxSize, 0))
}
