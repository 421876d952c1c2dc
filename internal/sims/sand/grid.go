package sand

import (
	"slices"

	"sandca/internal/core"
)

// cellSet is a set of row-major indices with O(1) insertion and a reset
// proportional to its population.
type cellSet struct {
	mark []bool
	list []int
}

func newCellSet(n int) cellSet {
	return cellSet{mark: make([]bool, n)}
}

func (s *cellSet) add(i int) {
	if s.mark[i] {
		return
	}
	s.mark[i] = true
	s.list = append(s.list, i)
}

func (s *cellSet) reset() {
	for _, i := range s.list {
		s.mark[i] = false
	}
	s.list = s.list[:0]
}

// Grid owns the live cell array and the schedule of cells to evaluate on the
// next tick. It is not safe for concurrent use.
type Grid struct {
	W, H int

	size  core.Size
	cells []ParticleType

	// active is consumed by the next tick; external edits mark into it.
	active cellSet
	// next accumulates marks made while a tick writes its working buffer.
	next cellSet
}

// NewGrid allocates an all-Empty grid. Non-positive dimensions clamp to one.
func NewGrid(w, h int) *Grid {
	size := core.Size{W: w, H: h}.Clamp()
	n := size.Area()
	return &Grid{
		W:      size.W,
		H:      size.H,
		size:   size,
		cells:  make([]ParticleType, n),
		active: newCellSet(n),
		next:   newCellSet(n),
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Cells exposes the live array in row-major order. Callers must treat it as
// read-only; it is replaced wholesale at every commit.
func (g *Grid) Cells() []ParticleType { return g.cells }

// Snapshot returns a copy of the live array.
func (g *Grid) Snapshot() []ParticleType { return slices.Clone(g.cells) }

// Get returns the particle at (x, y). The boolean is false out of bounds.
func (g *Grid) Get(x, y int) (ParticleType, bool) {
	return g.read(g.cells, x, y)
}

func (g *Grid) read(buf []ParticleType, x, y int) (ParticleType, bool) {
	if !g.size.Contains(x, y) {
		return Empty, false
	}
	i := g.size.Index(x, y)
	if i >= len(buf) {
		return Empty, false
	}
	return buf[i], true
}

func (g *Grid) markNext(x, y int) {
	g.size.Neighborhood(x, y, g.next.add)
}

func (g *Grid) markActive(x, y int) {
	g.size.Neighborhood(x, y, g.active.add)
}

// SetIn writes t at (x, y) in buf, a working buffer shaped like the grid.
// When the value changes, the 3x3 neighbourhood is scheduled for the tick
// after the one being built. It reports whether buf changed.
func (g *Grid) SetIn(buf []ParticleType, x, y int, t ParticleType) bool {
	if !t.Valid() || !g.size.Contains(x, y) {
		return false
	}
	i := g.size.Index(x, y)
	if i >= len(buf) || buf[i] == t {
		return false
	}
	buf[i] = t
	g.markNext(x, y)
	return true
}

// SwapIn exchanges two cells of buf and schedules both neighbourhoods. It is
// a no-op when either coordinate is out of bounds or the values are equal.
func (g *Grid) SwapIn(buf []ParticleType, x1, y1, x2, y2 int) bool {
	if !g.size.Contains(x1, y1) || !g.size.Contains(x2, y2) {
		return false
	}
	a, b := g.size.Index(x1, y1), g.size.Index(x2, y2)
	if a >= len(buf) || b >= len(buf) || buf[a] == buf[b] {
		return false
	}
	buf[a], buf[b] = buf[b], buf[a]
	g.markNext(x1, y1)
	g.markNext(x2, y2)
	return true
}

// Set is the external edit entry point. It writes the live array directly
// and schedules the neighbourhood for the next tick.
func (g *Grid) Set(x, y int, t ParticleType) bool {
	if !t.Valid() || !g.size.Contains(x, y) {
		return false
	}
	i := g.size.Index(x, y)
	if g.cells[i] == t {
		return false
	}
	g.cells[i] = t
	g.markActive(x, y)
	return true
}

// Keep schedules a single unchanged cell for the tick after the one being
// built.
func (g *Grid) Keep(x, y int) {
	if g.size.Contains(x, y) {
		g.next.add(g.size.Index(x, y))
	}
}

// Commit installs buf as the live array and promotes the accumulated marks
// to the active set. The retired array is returned so it can be reused as
// the next working buffer. A buffer of the wrong length is ignored.
func (g *Grid) Commit(buf []ParticleType) []ParticleType {
	if len(buf) != len(g.cells) {
		return nil
	}
	retired := g.cells
	g.cells = buf
	g.active, g.next = g.next, g.active
	g.next.reset()
	return retired
}

// takeActive appends the active indices to dst in ascending order and clears
// the accumulator ahead of a tick.
func (g *Grid) takeActive(dst []int) []int {
	dst = append(dst, g.active.list...)
	slices.Sort(dst)
	g.next.reset()
	return dst
}

// ActiveCount returns the number of cells scheduled for the next tick.
func (g *Grid) ActiveCount() int { return len(g.active.list) }

// IsActive reports whether (x, y) is scheduled for the next tick.
func (g *Grid) IsActive(x, y int) bool {
	if !g.size.Contains(x, y) {
		return false
	}
	return g.active.mark[g.size.Index(x, y)]
}

// ActiveCells lists the scheduled coordinates in row-major order.
func (g *Grid) ActiveCells() [][2]int {
	idx := slices.Clone(g.active.list)
	slices.Sort(idx)
	out := make([][2]int, len(idx))
	for n, i := range idx {
		x, y := g.size.Coord(i)
		out[n] = [2]int{x, y}
	}
	return out
}

// Clear empties every cell and drops all scheduled work.
func (g *Grid) Clear() {
	clear(g.cells)
	g.active.reset()
	g.next.reset()
}

// Count returns how many cells hold t.
func (g *Grid) Count(t ParticleType) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Census counts every particle type in the live array.
func (g *Grid) Census() [NumTypes]int {
	var out [NumTypes]int
	for _, c := range g.cells {
		if c.Valid() {
			out[c]++
		}
	}
	return out
}
