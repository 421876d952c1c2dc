package sand

// Random is the single source of nondeterminism for a simulation. It is
// satisfied by *core.RNG from sandca/pkg/core.
type Random interface {
	Float64() float64
	IntN(n int) int
	Bool() bool
}

func chance(r Random, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

func sign(r Random) int {
	if r.Bool() {
		return 1
	}
	return -1
}

// Stats summarises the most recent tick.
type Stats struct {
	Tick uint64
	// Evaluated counts cells that ran behaviour or movement rules.
	Evaluated int
	// Changed counts cells written during the tick.
	Changed int
	// Active is the size of the schedule for the following tick.
	Active int
}

// pass carries the per-tick state shared by movement and reaction rules.
// Decisions read old; writes land in next. A cell is written at most once
// per tick.
type pass struct {
	g      *Grid
	reg    *Registry
	rng    Random
	params Params

	old     []ParticleType
	next    []ParticleType
	written []bool
	changed int
}

func (p *pass) read(x, y int) (ParticleType, bool) {
	return p.g.read(p.old, x, y)
}

func (p *pass) claimable(x, y int) bool {
	return p.g.size.Contains(x, y) && !p.written[p.g.size.Index(x, y)]
}

func (p *pass) claim(x, y int) {
	i := p.g.size.Index(x, y)
	if !p.written[i] {
		p.written[i] = true
		p.changed++
	}
}

func (p *pass) put(x, y int, t ParticleType) bool {
	if !p.claimable(x, y) || !p.g.SetIn(p.next, x, y, t) {
		return false
	}
	p.claim(x, y)
	return true
}

func (p *pass) swap(x1, y1, x2, y2 int) bool {
	if !p.claimable(x1, y1) || !p.claimable(x2, y2) {
		return false
	}
	if !p.g.SwapIn(p.next, x1, y1, x2, y2) {
		return false
	}
	p.claim(x1, y1)
	p.claim(x2, y2)
	return true
}

// displaceable reports whether a particle of the given density may move
// into (x, y): the cell must exist, not be static and be strictly lighter.
func (p *pass) displaceable(x, y int, density float64) bool {
	t, ok := p.read(x, y)
	if !ok {
		return false
	}
	prof := p.reg.Profile(t)
	return prof.Phase != Static && prof.Density < density
}

// move applies density-driven movement: sink, slide diagonally, then spread
// sideways for liquids and gases.
func (p *pass) move(x, y int, prof Profile) bool {
	d := prof.Density
	if p.displaceable(x, y+1, d) && p.swap(x, y, x, y+1) {
		return true
	}

	left := p.displaceable(x-1, y+1, d)
	right := p.displaceable(x+1, y+1, d)
	if left && right {
		dx := sign(p.rng)
		if p.swap(x, y, x+dx, y+1) || p.swap(x, y, x-dx, y+1) {
			return true
		}
	} else if left {
		if p.swap(x, y, x-1, y+1) {
			return true
		}
	} else if right {
		if p.swap(x, y, x+1, y+1) {
			return true
		}
	}

	if !prof.Flows() {
		return false
	}
	dx := sign(p.rng)
	if p.displaceable(x+dx, y, d) && p.swap(x, y, x+dx, y) {
		return true
	}
	return p.displaceable(x-dx, y, d) && p.swap(x, y, x-dx, y)
}

// Engine advances a Grid one tick at a time using a snapshot of the live
// array and a separate working buffer.
type Engine struct {
	reg    *Registry
	rng    Random
	params Params

	spare   []ParticleType
	written []bool
	work    []int
	stats   Stats
}

// NewEngine builds an engine. A nil registry selects DefaultRegistry.
func NewEngine(reg *Registry, rng Random, params Params) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Engine{reg: reg, rng: rng, params: params}
}

// Registry returns the physical table the engine consults.
func (e *Engine) Registry() *Registry { return e.reg }

// Params returns the reaction probabilities in effect.
func (e *Engine) Params() Params { return e.params }

// SetParams replaces the reaction probabilities from the next tick on.
func (e *Engine) SetParams(p Params) { e.params = p }

// Stats reports the most recent tick.
func (e *Engine) Stats() Stats { return e.stats }

// ResetStats zeroes the tick counter and the per-tick figures.
func (e *Engine) ResetStats() { e.stats = Stats{} }

// Step advances g by one generation. Only cells in the active set are
// evaluated; the live array is replaced once, at the end.
func (e *Engine) Step(g *Grid) {
	n := len(g.cells)
	if len(e.spare) != n {
		e.spare = make([]ParticleType, n)
	}
	if len(e.written) != n {
		e.written = make([]bool, n)
	} else {
		clear(e.written)
	}
	copy(e.spare, g.cells)

	e.work = g.takeActive(e.work[:0])
	p := pass{
		g:       g,
		reg:     e.reg,
		rng:     e.rng,
		params:  e.params,
		old:     g.cells,
		next:    e.spare,
		written: e.written,
	}

	evaluated := 0
	for _, i := range e.work {
		if p.written[i] {
			continue
		}
		cur := p.old[i]
		if cur == Empty {
			continue
		}
		prof := e.reg.Profile(cur)
		react := reactive(cur)
		if prof.Phase == Static && !react {
			continue
		}
		evaluated++
		x, y := g.size.Coord(i)
		if react && p.react(x, y, cur) {
			continue
		}
		moved := prof.Phase != Static && p.move(x, y, prof)
		if !moved && react {
			g.Keep(x, y)
		}
	}

	e.spare = g.Commit(p.next)
	e.stats = Stats{
		Tick:      e.stats.Tick + 1,
		Evaluated: evaluated,
		Changed:   p.changed,
		Active:    g.ActiveCount(),
	}
}
