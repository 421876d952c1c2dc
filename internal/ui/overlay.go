//go:build ebiten

package ui

import (
	"image/color"

	"sandca/internal/core"
	"sandca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var activeTint = color.RGBA{R: 255, G: 120, B: 40, A: 110}

// Overlay draws optional debugging visuals on top of the base simulation.
// Press A to toggle the cells scheduled for the next tick.
type Overlay struct {
	sim        core.Sim
	scale      int
	showActive bool
	painter    *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showActive = !o.showActive
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showActive {
		return
	}
	provider, ok := o.sim.(core.ActivityProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.Area() == 0 {
		return
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	o.painter.BlitMask(screen, provider.ActiveMask(), activeTint, o.scale)
}
