package board_test

import (
	"fmt"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
)

// ExampleBoard_Superimpose places an L tromino in the top-left corner and
// then tries to overlap it with a second one.
func ExampleBoard_Superimpose() {
	b := board.New()
	l := shape.MustFromPattern(2, 2, "##.#")

	p := b.Superimpose(l, board.Anchor{X: 0.1, Y: 0.1})
	fmt.Println("first:", p.Success)
	if _, err := b.Commit(p, shape.Blue); err != nil {
		fmt.Println(err)
	}

	p = b.Superimpose(l.Rotate90(), board.Anchor{X: 0.1, Y: 0.1})
	fmt.Println("second:", p.Success, p.Count(board.Fits), p.Count(board.Intersects))
	fmt.Println(b.String()[:3*(board.Width+1)-1])

	// Output:
	// first: true
	// second: false 1 2
	// ....................
	// .##.................
	// ..#.................
}
