package catalog

import "errors"

var (
	// ErrEmptyPattern is returned for a pattern with no occupied cells.
	ErrEmptyPattern = errors.New("pattern has no occupied cells")
	// ErrEmptyCatalog is returned when no patterns were given.
	ErrEmptyCatalog = errors.New("catalog has no shapes")
)

// Defaults are the base patterns the game ships with.
var Defaults = []Pattern{
	{Name: "square2", Width: 2, Height: 2, Pattern: "####"},
	{Name: "line4", Width: 4, Height: 1, Pattern: "####"},
	{Name: "line3", Width: 3, Height: 1, Pattern: "###"},
	{Name: "v", Width: 2, Height: 2, Pattern: "##.#"},
	{Name: "l", Width: 3, Height: 2, Pattern: "###..#"},
	{Name: "dot", Width: 1, Height: 1, Pattern: "#"},
	{Name: "line2", Width: 1, Height: 2, Pattern: "##"},
	{Name: "square3", Width: 3, Height: 3, Pattern: "#########"},
	{Name: "rect", Width: 2, Height: 3, Pattern: "######"},
	{Name: "t", Width: 3, Height: 2, Pattern: "###.#."},
	{Name: "s", Width: 3, Height: 2, Pattern: "##..##"},
}
