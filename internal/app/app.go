//go:build ebiten

package app

import (
	"image/color"
	"time"

	"go.uber.org/zap"

	"sandca/internal/core"
	"sandca/internal/render"
	"sandca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// HUDWidth is the width in pixels of the panel to the right of the grid.
const HUDWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	editor  core.Editable
	painter *render.GridPainter
	palette []color.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD
	tools   *ui.Toolbox

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	stroking    bool
	strokeErase bool
	lastX       int
	lastY       int
	eraseValue  uint8

	log *zap.SugaredLogger
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	tools := ui.NewToolbox(sim, "sand")
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		tools:   tools,
		hud:     ui.NewHUD(sim, tools, HUDWidth),
		scale:   scale,
		seed:    seed,
		log:     zap.S().Named("app"),
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		g.palette = provider.Palette()
	} else {
		g.palette = render.GrayPalette(2)
	}
	if editor, ok := sim.(core.Editable); ok {
		g.editor = editor
		if mats := editor.Materials(); len(mats) > 0 {
			g.eraseValue = mats[0].Value
		}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.stroking = false
	g.log.Infow("reset", "sim", g.sim.Name(), "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(core.ResetSeed(g.sim, g.seed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.updateTools()

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.paint()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateTools() {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.tools.SelectDigit(rune('0' + i))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.tools.Resize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.tools.Resize(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.tools.ToggleShape()
	}
}

// paint strokes the selected tool from the previous cursor cell so fast
// drags leave no gaps. The right button erases; switching buttons starts a
// new stroke.
func (g *Game) paint() {
	if g.editor == nil || !g.tools.Enabled() {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	mx, my := ebiten.CursorPosition()
	if (!left && !right) || mx < 0 || my < 0 || mx >= g.gridWidth() {
		g.stroking = false
		return
	}
	x, y := mx/g.scale, my/g.scale
	if !g.sim.Size().Contains(x, y) {
		g.stroking = false
		return
	}
	tool := g.tools.Tool()
	if right {
		tool.Value = g.eraseValue
	}
	x0, y0 := x, y
	if g.stroking && g.strokeErase == right {
		x0, y0 = g.lastX, g.lastY
	}
	g.editor.Paint(x0, y0, x, y, tool)
	g.stroking = true
	g.strokeErase = right
	g.lastX, g.lastY = x, y
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
