package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
	"github.com/spf13/cobra"
)

// ErrPlacementSyntax is returned for a placement argument that does not
// follow WxH:PATTERN@X,Y.
var ErrPlacementSyntax = errors.New("placement must look like WxH:PATTERN@X,Y")

// Placement is one parsed place argument.
type Placement struct {
	Shape  shape.Shape
	Anchor board.Anchor
}

// ParsePlacement parses WxH:PATTERN@X,Y, for example 3x2:###..#@0.5,0.5.
func ParsePlacement(arg string) (Placement, error) {
	dims, rest, ok := strings.Cut(arg, ":")
	if !ok {
		return Placement{}, fmt.Errorf("%q: %w", arg, ErrPlacementSyntax)
	}
	pattern, at, ok := strings.Cut(rest, "@")
	if !ok {
		return Placement{}, fmt.Errorf("%q: %w", arg, ErrPlacementSyntax)
	}

	ws, hs, ok := strings.Cut(dims, "x")
	if !ok {
		return Placement{}, fmt.Errorf("%q: %w", arg, ErrPlacementSyntax)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return Placement{}, fmt.Errorf("%q: width: %w", arg, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return Placement{}, fmt.Errorf("%q: height: %w", arg, err)
	}

	xs, ys, ok := strings.Cut(at, ",")
	if !ok {
		return Placement{}, fmt.Errorf("%q: %w", arg, ErrPlacementSyntax)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return Placement{}, fmt.Errorf("%q: anchor x: %w", arg, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return Placement{}, fmt.Errorf("%q: anchor y: %w", arg, err)
	}

	s, err := shape.FromPattern(w, h, pattern)
	if err != nil {
		return Placement{}, err
	}
	return Placement{Shape: s, Anchor: board.Anchor{X: x, Y: y}}, nil
}

func newPlaceCmd() *cobra.Command {
	var (
		quiet     bool
		colorName string
	)

	cmd := &cobra.Command{
		Use:   "place WxH:PATTERN@X,Y...",
		Short: "Place shapes in order on an empty board and show each check",
		Long: `Place evaluates each placement against the board built by the ones before
it. Successful placements are committed; failed ones are reported and skipped.
The overlay marks fitting cells '#' and overlapping cells 'x'.`,
		Example: "  blockfit place 2x2:####@0.1,0.1 2x2:####@0.1,0.1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFrom(cmd.Context())
			out := cmd.OutOrStdout()

			color, err := parseColor(colorName)
			if err != nil {
				return err
			}

			placements := make([]Placement, 0, len(args))
			for _, arg := range args {
				p, err := ParsePlacement(arg)
				if err != nil {
					return err
				}
				placements = append(placements, p)
			}

			b := board.New()
			for i, p := range placements {
				result := b.Superimpose(p.Shape, p.Anchor)
				fits := result.Count(board.Fits)
				intersects := result.Count(board.Intersects)
				off := p.Shape.Size() - fits - intersects

				logger.Debug().
					Int("placement", i+1).
					Bool("success", result.Success).
					Int("fits", fits).
					Int("intersects", intersects).
					Int("off_board", off).
					Msg("evaluated")

				if result.Success {
					fmt.Fprintf(out, "placement %d at (%g, %g): ok\n", i+1, p.Anchor.X, p.Anchor.Y)
					if _, err := b.Commit(result, color); err != nil {
						return err
					}
				} else {
					fmt.Fprintf(out, "placement %d at (%g, %g): rejected, %d overlapping, %d off board\n",
						i+1, p.Anchor.X, p.Anchor.Y, intersects, off)
				}
				if !quiet {
					fmt.Fprintf(out, "%s\n\n", result)
				}
			}

			fmt.Fprintf(out, "board (%d occupied)\n%s\n", b.Occupied(), b)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the final board")
	cmd.Flags().StringVar(&colorName, "color", "blue", "color committed pieces are painted with")
	return cmd
}

func parseColor(name string) (shape.Color, error) {
	for _, c := range shape.Playable {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return shape.Gray, fmt.Errorf("%q is not a playable color", name)
}
