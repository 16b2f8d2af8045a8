package shape

import (
	"errors"
	"fmt"
)

// Pattern alphabet.
const (
	Filled = '#'
	Empty  = '.'
)

var (
	// ErrPatternLength is returned when a pattern does not hold width*height cells.
	ErrPatternLength = errors.New("pattern length does not match dimensions")
	// ErrPatternSize is returned when the declared dimensions fall outside 1..MaxSize.
	ErrPatternSize = errors.New("pattern dimensions out of bounds")
	// ErrPatternChar is returned for any character other than '#' or '.'.
	ErrPatternChar = errors.New("invalid character in pattern")
)

// PatternError describes why a pattern could not be parsed.
type PatternError struct {
	Width, Height int
	Pattern       string
	Err           error
	detail        string
}

func (e *PatternError) Error() string {
	msg := fmt.Sprintf("shape %dx%d %q: %v", e.Width, e.Height, e.Pattern, e.Err)
	if e.detail != "" {
		msg += ": " + e.detail
	}
	return msg
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// FromPattern parses a row-major pattern of '#' and '.' characters laid out
// in rows of the given width. The resulting shape is Gray.
//
// Patterns are configuration, authored alongside the catalog; they are never
// built from player input.
func FromPattern(width, height int, pattern string) (Shape, error) {
	fail := func(err error, detail string) (Shape, error) {
		return Shape{}, &PatternError{Width: width, Height: height, Pattern: pattern, Err: err, detail: detail}
	}

	if width < 1 || height < 1 || width > MaxSize || height > MaxSize {
		return fail(ErrPatternSize, fmt.Sprintf("limit is %dx%d", MaxSize, MaxSize))
	}
	if len(pattern) != width*height {
		return fail(ErrPatternLength, fmt.Sprintf("got %d cells, want %d", len(pattern), width*height))
	}

	s := Shape{color: Gray}
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case Filled:
			s.cells[i/width][i%width] = true
		case Empty:
		default:
			return fail(ErrPatternChar, fmt.Sprintf("%q at offset %d", c, i))
		}
	}
	return s, nil
}

// MustFromPattern is like FromPattern but panics on error. It is intended for
// package-level shape tables.
func MustFromPattern(width, height int, pattern string) Shape {
	s, err := FromPattern(width, height, pattern)
	if err != nil {
		panic(err)
	}
	return s
}
