//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"sandca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the tool and parameter panel to the right of the simulation
// view.
type HUD struct {
	sim        core.Sim
	tools      *Toolbox
	palette    []color.RGBA
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	swatches     []image.Rectangle
	controls     []ControlState
	controlsTop  int
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation, toolbox and panel
// width.
func NewHUD(sim core.Sim, tools *Toolbox, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, tools: tools, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.PaletteProvider); ok {
		h.palette = provider.Palette()
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = NewControlStates(provider.ParameterControls())
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	h.layout()
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	params := h.snapshot.Index()
	for i := range h.controls {
		h.controls[i].Refresh(params)
	}
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, textColor)
	h.drawTools()
	h.drawStats()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i, rect := range h.swatches {
		if pointInRect(px, my, rect) {
			h.tools.Select(i)
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			state.Adjust(-1, h.intSetter, h.floatSetter)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			state.Adjust(1, h.intSetter, h.floatSetter)
			return
		}
	}
}

func (h *HUD) drawTools() {
	if h.tools == nil || !h.tools.Enabled() {
		return
	}
	face := basicfont.Face7x13
	for i, rect := range h.swatches {
		col := color.RGBA{R: 90, G: 90, B: 100, A: 255}
		if i < len(h.palette) {
			col = h.palette[i]
		}
		if i == h.tools.Index() {
			h.fillRect(rect.Inset(-2), color.RGBA{R: 230, G: 230, B: 240, A: 255})
		}
		h.fillRect(rect, col)
	}
	y := toolsTop + h.swatchRows()*(swatchSize+swatchGap) + labelBaseline
	text.Draw(h.panel, h.tools.Label(), face, panelPadding, y, textColor)
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	line := fmt.Sprintf("tick %s  active %s", h.value("tick"), h.value("active"))
	text.Draw(h.panel, line, face, panelPadding, h.controlsTop-8, dimColor)
}

func (h *HUD) value(key string) string {
	if p, ok := h.snapshot.Lookup(key); ok {
		return p.Value
	}
	return "--"
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, h.controlsTop+labelBaseline, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.Control.Label, face, panelPadding, labelY, textColor)
		valueColor := textColor
		if !state.HasValue {
			valueColor = dimColor
		}
		valueWidth := text.BoundString(face, state.Value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, state.Value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.CanAdjust(-1))
		h.drawButton(state.plusRect, "+", state.CanAdjust(1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) swatchRows() int {
	if h.tools == nil || !h.tools.Enabled() {
		return 0
	}
	n := len(h.tools.Materials())
	return (n + swatchesPerRow - 1) / swatchesPerRow
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	if h.tools != nil {
		for i := range h.tools.Materials() {
			row, col := i/swatchesPerRow, i%swatchesPerRow
			x := panelPadding + col*(swatchSize+swatchGap)
			y := toolsTop + row*(swatchSize+swatchGap)
			h.swatches = append(h.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		}
	}
	h.controlsTop = toolsTop + h.swatchRows()*(swatchSize+swatchGap) + 2*lineHeight
	for i := range h.controls {
		top := h.controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

var (
	textColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	swatchSize     = 22
	swatchGap      = 6
	swatchesPerRow = 5
	toolsTop       = panelPadding + headerBaseline + 14
)
