// Package debugui overlays a Dear ImGui panel on the play window.
package debugui

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Stats is the placement state shown in the panel.
type Stats struct {
	AnchorX, AnchorY float64
	State            string
	Success          bool
	Fits             int
	Intersects       int
	Placed           int
	CatalogSize      int
	Piece            string
}

// Panel owns the ImGui backend. Call BeginFrame and EndFrame around the game
// update with Update in between, and Draw after the game has drawn its own
// content.
type Panel struct {
	backend *ebitenbackend.EbitenBackend
}

// New creates the backend and the game window.
func New(title string, width, height int) *Panel {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Panel{backend: backend}
}

// WantsMouse reports whether ImGui is consuming pointer input this frame.
func (p *Panel) WantsMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

// BeginFrame starts an ImGui frame.
func (p *Panel) BeginFrame() {
	p.backend.BeginFrame()
}

// Update queues the panel window showing s. Call it between BeginFrame and
// EndFrame once the frame's placement state is known.
func (p *Panel) Update(s Stats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 200), imgui.CondOnce)
	if !imgui.BeginV("Placement", nil, 0) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.Text(fmt.Sprintf("Anchor: %.3f, %.3f", s.AnchorX, s.AnchorY))
	imgui.Text(fmt.Sprintf("State: %s", s.State))
	imgui.Text(fmt.Sprintf("Success: %t", s.Success))
	imgui.Text(fmt.Sprintf("Fits / Intersects: %d / %d", s.Fits, s.Intersects))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Placed: %d", s.Placed))
	imgui.Text(fmt.Sprintf("Catalog: %d shapes", s.CatalogSize))
	imgui.Separator()
	imgui.Text(s.Piece)
}

// EndFrame finishes the ImGui frame.
func (p *Panel) EndFrame() {
	p.backend.EndFrame()
}

// Draw renders the panel over screen.
func (p *Panel) Draw(screen *ebiten.Image) {
	p.backend.Draw(screen)
}

// Layout forwards the window size to the backend.
func (p *Panel) Layout(width, height int) {
	p.backend.Layout(width, height)
}
