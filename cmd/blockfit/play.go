package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/catalog"
	"github.com/plus3/blockfit/internal/cli"
	"github.com/plus3/blockfit/internal/debugui"
	"github.com/plus3/blockfit/internal/deck"
	"github.com/plus3/blockfit/internal/session"
	"github.com/plus3/blockfit/internal/view"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const windowTitle = "blockfit"

func newPlayCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long: `Move the pointer to position the piece, left-click to place it,
right-click or R to rotate it, Backspace to clear the board, Esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := cli.ConfigFrom(ctx)
			logger := cli.LoggerFrom(ctx)

			c, err := cli.LoadCatalog(ctx)
			if err != nil {
				return err
			}
			colors, err := cfg.PieceColors()
			if err != nil {
				return err
			}

			g := &game{
				session: session.New(deck.New(c, deck.WithColors(colors...)), session.WithLogger(*logger)),
				catalog: c,
				layout:  view.Layout{TileSize: cfg.TileSize},
				logger:  logger,
			}

			w, h := g.layout.Size()
			if debug || cfg.DebugUI {
				g.panel = debugui.New(windowTitle, w, h)
			} else {
				ebiten.SetWindowSize(w, h)
				ebiten.SetWindowTitle(windowTitle)
			}

			logger.Info().Int("shapes", c.Len()).Int("tile_size", cfg.TileSize).Msg("starting game")
			if err := ebiten.RunGame(g); err != nil {
				return err
			}
			logger.Info().Int("placed", g.session.Placed()).Msg("game closed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug-ui", false, "show the placement debug panel")
	return cmd
}

// game is the ebiten host. It reads the session and forwards input to it;
// the session alone mutates the board.
type game struct {
	session *session.Session
	catalog *catalog.Catalog
	layout  view.Layout
	panel   *debugui.Panel
	logger  *zerolog.Logger

	anchor  board.Anchor
	overlay board.Superimposition
	cursorX int
	cursorY int
}

func (g *game) Update() error {
	if g.panel != nil {
		g.panel.BeginFrame()
		defer g.panel.EndFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.Rotate()
	}

	g.cursorX, g.cursorY = ebiten.CursorPosition()
	g.anchor = g.layout.Anchor(g.cursorX, g.cursorY)
	g.overlay = g.session.Hover(g.anchor)

	pointerFree := g.panel == nil || !g.panel.WantsMouse()
	if pointerFree && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		placed, err := g.session.Accept()
		if err != nil {
			return err
		}
		if placed {
			g.overlay = g.session.Hover(g.anchor)
		}
	}

	if g.panel != nil {
		g.panel.Update(debugui.Stats{
			AnchorX:     g.anchor.X,
			AnchorY:     g.anchor.Y,
			State:       g.session.State().String(),
			Success:     g.overlay.Success,
			Fits:        g.overlay.Count(board.Fits),
			Intersects:  g.overlay.Count(board.Intersects),
			Placed:      g.session.Placed(),
			CatalogSize: g.catalog.Len(),
			Piece:       g.session.Current().String(),
		})
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	size := float32(g.layout.TileSize)
	inset := size * 0.01

	for pt, tile := range g.session.Tiles() {
		x, y := g.layout.TileOrigin(pt.Col, pt.Row)
		vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, view.TileColor(tile), false)
	}

	piece := g.session.Current()
	for pt, status := range g.overlay.All() {
		if status == board.Blank {
			continue
		}
		x, y := g.layout.TileOrigin(pt.Col, pt.Row)
		vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, view.OverlayColor(status, piece.Color()), false)
	}

	// Ghost of the held piece, centered on the pointer.
	w, h := piece.Bounds()
	originX := float32(g.cursorX) - float32(w)*size/2
	originY := float32(g.cursorY) - float32(h)*size/2
	ghost := view.WithAlpha(view.Palette(piece.Color()), 0x40)
	for x, y := range piece.Cells() {
		vector.DrawFilledRect(screen, originX+float32(x)*size, originY+float32(y)*size, size-2*inset, size-2*inset, ghost, false)
	}

	if g.panel != nil {
		g.panel.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.panel != nil {
		g.panel.Layout(outsideWidth, outsideHeight)
	}
	return g.layout.Size()
}

var _ ebiten.Game = (*game)(nil)
