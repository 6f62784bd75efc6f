//go:build ebiten

package ui

import (
	"image/color"

	"sparse-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a small status panel in the top-left corner of the viewer.
type HUD struct {
	sim   core.Sim
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw renders the status lines over the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	provider, ok := h.sim.(core.StatsProvider)
	if !ok {
		return
	}
	lines := StatusLines(h.sim.Name(), provider.Stats(), paused)

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + 2*panelPadding

	bg := color.RGBA{R: 20, G: 22, B: 28, A: 200}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	screen.DrawImage(h.pixel, op)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range lines {
		text.Draw(screen, line, face, panelPadding, panelPadding+textBaseline+i*lineHeight, fg)
	}
}

const (
	panelPadding = 8
	lineHeight   = 16
	textBaseline = 11
)
