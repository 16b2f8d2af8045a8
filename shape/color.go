package shape

// Color tags a shape or a placed tile. It is a classification label for
// rendering, not an owned resource.
type Color uint8

const (
	// Gray marks an empty cell and is the color a freshly parsed shape carries.
	Gray Color = iota
	Red
	Green
	Blue
	// Transparent is used only to reset overlay cells and is never stored on a board.
	Transparent
)

// Playable lists the colors a drawn piece may be assigned.
var Playable = []Color{Red, Green, Blue}

func (c Color) String() string {
	switch c {
	case Gray:
		return "gray"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Transparent:
		return "transparent"
	default:
		return "unknown"
	}
}
