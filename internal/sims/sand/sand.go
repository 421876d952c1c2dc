package sand

import (
	"go.uber.org/zap"

	"sandca/internal/core"
	pcore "sandca/pkg/core"
)

// Sandbox adapts a Grid and Engine to the core.Sim contract so the generic
// front-ends can drive, paint and render it.
type Sandbox struct {
	cfg Config

	grid   *Grid
	engine *Engine
	rng    *pcore.RNG

	display []uint8

	log *zap.SugaredLogger
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *Sandbox {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options. The
// grid starts empty; call Reset to seed the configured scene.
func NewWithConfig(cfg Config) *Sandbox {
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	rng := pcore.NewRNG(cfg.Seed)
	s := &Sandbox{
		cfg:     cfg,
		grid:    grid,
		engine:  NewEngine(DefaultRegistry(), rng, cfg.Params),
		rng:     rng,
		display: make([]uint8, grid.W*grid.H),
		log:     zap.S().Named("sand"),
	}
	s.log.Debugw("grid created", "w", grid.W, "h", grid.H, "seed", cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sandbox) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Sandbox) Size() core.Size { return s.grid.Size() }

// Grid exposes the underlying grid.
func (s *Sandbox) Grid() *Grid { return s.grid }

// Engine exposes the update engine.
func (s *Sandbox) Engine() *Engine { return s.engine }

// Config returns the configuration the sandbox was built with, including
// any parameter changes made since.
func (s *Sandbox) Config() Config { return s.cfg }

// Cells copies the live grid into a byte buffer for renderers. The buffer is
// reused between calls.
func (s *Sandbox) Cells() []uint8 {
	for i, c := range s.grid.Cells() {
		s.display[i] = uint8(c)
	}
	return s.display
}

// ActiveMask exposes the cells scheduled for the next tick. The slice is
// owned by the grid and must not be modified.
func (s *Sandbox) ActiveMask() []bool { return s.grid.active.mark }

// Reset clears the grid, reseeds the random source and lays out the
// configured scene. A zero seed selects the configured seed; any other seed
// becomes the configured one.
func (s *Sandbox) Reset(seed int64) {
	if seed != 0 {
		s.cfg.Seed = seed
	}
	effective := s.cfg.Seed
	s.rng.Seed(effective)
	s.grid.Clear()
	s.engine.ResetStats()
	placed := seedScene(s.grid, s.cfg.Scene, s.rng)
	s.log.Debugw("reset", "seed", effective, "scene", s.cfg.Scene, "placed", placed)
}

// Step advances the simulation by one tick.
func (s *Sandbox) Step() {
	s.engine.Step(s.grid)
}

// Stats reports the most recent tick.
func (s *Sandbox) Stats() Stats { return s.engine.Stats() }

// Materials lists the paintable particle types in enumeration order.
func (s *Sandbox) Materials() []core.Material {
	out := make([]core.Material, 0, NumTypes)
	for _, t := range Types() {
		out = append(out, core.Material{Value: uint8(t), Name: t.String()})
	}
	return out
}

// Paint strokes a brush built from tool between two grid coordinates.
func (s *Sandbox) Paint(x0, y0, x1, y1 int, tool core.Tool) int {
	t := ParticleType(tool.Value)
	if !t.Valid() {
		return 0
	}
	b := Brush{Type: t, Size: tool.Size, Shape: Square}
	if tool.Shape == core.ToolCircle {
		b.Shape = Circle
	}
	changed := s.grid.Stroke(x0, y0, x1, y1, b)
	if changed > 0 {
		s.log.Debugw("paint", "type", t, "from", [2]int{x0, y0}, "to", [2]int{x1, y1}, "changed", changed)
	}
	return changed
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
