// Package tui runs a simulation inside a terminal using tcell. Each terminal
// row shows two grid rows through an upper half block whose foreground is
// the top cell and background the bottom cell.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"sandca/internal/core"
	"sandca/internal/render"
	"sandca/internal/ui"
)

const halfBlock = '▀'

// FrameInterval is how often the screen is redrawn.
const FrameInterval = 16 * time.Millisecond

// App drives a sim inside a tcell screen.
type App struct {
	screen  tcell.Screen
	sim     core.Sim
	editor  core.Editable
	tools   *ui.Toolbox
	palette []tcell.Color
	clock   *core.FixedStep

	seed     int64
	ticks    uint64
	paused   bool
	stepOnce bool

	stroking    bool
	strokeErase bool
	lastX       int
	lastY       int
	erase       uint8

	log *zap.SugaredLogger
}

// New wires sim to an initialised screen. The sim is not reset.
func New(screen tcell.Screen, sim core.Sim, seed int64, tps int) *App {
	a := &App{
		screen: screen,
		sim:    sim,
		tools:  ui.NewToolbox(sim, "sand"),
		clock:  core.NewFixedStep(tps),
		seed:   seed,
		log:    zap.S().Named("tui"),
	}
	var palette []color.RGBA
	if provider, ok := sim.(core.PaletteProvider); ok {
		palette = provider.Palette()
	} else {
		palette = render.GrayPalette(2)
	}
	a.palette = make([]tcell.Color, len(palette))
	for i, c := range palette {
		a.palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	if editor, ok := sim.(core.Editable); ok {
		a.editor = editor
		if mats := editor.Materials(); len(mats) > 0 {
			a.erase = mats[0].Value
		}
	}
	return a
}

// GridSizeFor returns the largest grid that fits a terminal of the given
// size with one row left for the status line.
func GridSizeFor(cols, rows int) core.Size {
	return core.Size{W: cols, H: 2 * (rows - 1)}.Clamp()
}

// Tools exposes the active toolbox.
func (a *App) Tools() *ui.Toolbox { return a.tools }

// Paused reports whether automatic stepping is suspended.
func (a *App) Paused() bool { return a.paused }

// Ticks reports how many steps the app has driven since the last reset.
func (a *App) Ticks() uint64 { return a.ticks }

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r {
	case 'q':
		return false
	case ' ':
		a.paused = !a.paused
	case 'n':
		a.stepOnce = true
	case 'r':
		a.Reset(core.ResetSeed(a.sim, a.seed))
	case '[':
		a.tools.Resize(-1)
	case ']':
		a.tools.Resize(1)
	case 'c':
		a.tools.ToggleShape()
	default:
		a.tools.SelectDigit(r)
	}
	return true
}

// handleMouse paints with the primary button and erases with the secondary
// one. Consecutive positions of a drag with the same button are joined into
// a stroke; switching buttons starts a new one.
func (a *App) handleMouse(col, row int, buttons tcell.ButtonMask) {
	paint := buttons&tcell.Button1 != 0
	erase := buttons&tcell.Button2 != 0
	x, y := col, row*2
	if a.editor == nil || (!paint && !erase) || !a.sim.Size().Contains(x, y) {
		a.stroking = false
		return
	}
	x0, y0 := x, y
	if a.stroking && a.strokeErase == erase {
		x0, y0 = a.lastX, a.lastY
	}
	a.editor.Paint(x0, y0, x, y, a.strokeTool(erase))
	a.stroking = true
	a.strokeErase = erase
	a.lastX, a.lastY = x, y
}

func (a *App) strokeTool(erase bool) core.Tool {
	tool := a.tools.Tool()
	if erase {
		tool.Value = a.erase
	}
	return tool
}

// holdStroke stamps the tool again under a button that is held still.
// Terminals only report mouse motion, so this runs once per frame.
func (a *App) holdStroke() {
	if !a.stroking || a.editor == nil {
		return
	}
	a.editor.Paint(a.lastX, a.lastY, a.lastX, a.lastY, a.strokeTool(a.strokeErase))
}

// Reset reseeds the sim and the tick counter.
func (a *App) Reset(seed int64) {
	a.seed = seed
	a.sim.Reset(seed)
	a.ticks = 0
	a.stroking = false
	a.log.Infow("reset", "sim", a.sim.Name(), "seed", seed)
}

// Tick advances the sim by up to n steps. While paused only a requested
// single step runs.
func (a *App) Tick(n int) {
	if a.paused {
		if !a.stepOnce {
			return
		}
		n = 1
	}
	a.stepOnce = false
	for i := 0; i < n; i++ {
		a.sim.Step()
		a.ticks++
	}
}

// Draw renders the grid and the status line, then shows the screen.
func (a *App) Draw() {
	a.screen.Clear()
	cols, rows := a.screen.Size()
	size := a.sim.Size()
	cells := a.sim.Cells()
	for row := 0; row < rows-1 && row*2 < size.H; row++ {
		for x := 0; x < cols && x < size.W; x++ {
			top := a.color(cells[size.Index(x, row*2)])
			bottom := tcell.ColorBlack
			if y := row*2 + 1; y < size.H {
				bottom = a.color(cells[size.Index(x, y)])
			}
			a.screen.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	if rows > 0 {
		a.drawText(0, rows-1, a.Status(), tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	}
	a.screen.Show()
}

func (a *App) color(v uint8) tcell.Color {
	if int(v) < len(a.palette) {
		return a.palette[v]
	}
	return tcell.ColorFuchsia
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	cols, _ := a.screen.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Status summarises the run state for the bottom line.
func (a *App) Status() string {
	state := "running"
	if a.paused {
		state = "paused"
	}
	active := "--"
	if provider, ok := a.sim.(core.ParameterProvider); ok {
		if p, ok := provider.Parameters().Lookup("active"); ok {
			active = p.Value
		}
	}
	return fmt.Sprintf("tick %d | %s | brush %s | active %s | space pause  n step  r reset  q quit",
		a.ticks, state, a.tools.Label(), active)
}

// Run polls terminal events and paces the sim until ctx is done or the user
// quits.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			select {
			case events <- ev:
			case <-done:
				return
			}
			if ev == nil {
				return
			}
		}
	}()

	frames := time.NewTicker(FrameInterval)
	defer frames.Stop()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil || !a.HandleEvent(ev) {
				return nil
			}
		case <-frames.C:
			a.holdStroke()
			a.Tick(a.clock.Pending())
			a.Draw()
		}
	}
}
