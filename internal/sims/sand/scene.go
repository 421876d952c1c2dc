package sand

import "sandca/pkg/core"

const (
	// SceneEmpty leaves the grid empty.
	SceneEmpty = "empty"
	// SceneDemo lays out one of everything.
	SceneDemo = "demo"
)

func validScene(name string) bool {
	return name == SceneEmpty || name == SceneDemo
}

// seedScene populates g through the external edit entry point so the seeded
// cells are scheduled for the first tick.
func seedScene(g *Grid, name string, rng *core.RNG) int {
	if name != SceneDemo {
		return 0
	}
	w, h := g.W, g.H
	if w < 8 || h < 8 {
		return 0
	}
	placed := 0
	line := func(x0, y0, x1, y1 int, t ParticleType) {
		placed += g.Stroke(x0, y0, x1, y1, Brush{Type: t, Size: 1})
	}
	fill := func(x0, y0, x1, y1 int, t ParticleType, density float64) {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if rng.Chance(density) && g.Set(x, y, t) {
					placed++
				}
			}
		}
	}

	// Floor, a ledge on the left and a basin wall on the right.
	line(0, h-1, w-1, h-1, Stone)
	line(w/8, h*2/3, w*3/8, h*2/3+h/12, Stone)
	line(w*5/8, h-2, w*5/8, h*3/4, Stone)

	// Sand heap falling onto the ledge, salt sprinkled beside it.
	fill(w/6, h/8, w/3, h/4, Sand, 0.7)
	fill(w/3+2, h/8, w/3+w/16, h/5, Salt, 0.5)

	// Water with an oil slick above it in the right basin.
	fill(w*5/8+1, h*3/4, w-2, h-2, Water, 1)
	fill(w*5/8+1, h*3/4-h/16, w-2, h*3/4-1, Oil, 1)

	// Plant bed between ledge and basin with a spark at one end.
	bed := h - 2
	line(w*3/8+2, bed, w*5/8-2, bed, Plant)
	if g.Set(w*3/8+1, bed, Fire) {
		placed++
	}
	return placed
}
