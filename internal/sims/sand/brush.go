package sand

// Shape selects a brush footprint.
type Shape uint8

const (
	Square Shape = iota
	Circle
)

// Brush is the drawing tool configuration owned by an input adapter and
// passed explicitly into each edit.
type Brush struct {
	Type  ParticleType
	Size  int
	Shape Shape
}

// each calls fn for every offset covered by the brush. A size below one
// paints a single cell.
func (b Brush) each(fn func(dx, dy int)) {
	half := b.Size / 2
	if half < 0 {
		half = 0
	}
	r2 := half * half
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if b.Shape == Circle && dx*dx+dy*dy > r2 {
				continue
			}
			fn(dx, dy)
		}
	}
}

// Paint stamps the brush centred on (cx, cy) through the external edit
// entry point and returns the number of cells changed. Cells outside the
// grid are skipped.
func (g *Grid) Paint(cx, cy int, b Brush) int {
	changed := 0
	b.each(func(dx, dy int) {
		if g.Set(cx+dx, cy+dy, b.Type) {
			changed++
		}
	})
	return changed
}

// Stroke stamps the brush at every cell of the line from (x0, y0) to
// (x1, y1), so fast pointer motion leaves no gaps.
func (g *Grid) Stroke(x0, y0, x1, y1 int, b Brush) int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy
	changed := 0
	for {
		changed += g.Paint(x0, y0, b)
		if x0 == x1 && y0 == y1 {
			return changed
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
