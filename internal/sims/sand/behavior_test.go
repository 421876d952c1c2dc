package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always returns the same draws, pinning every random choice.
type fixedRandom struct {
	f float64
	n int
	b bool
}

func (r fixedRandom) Float64() float64 { return r.f }

func (r fixedRandom) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRandom) Bool() bool { return r.b }

func neighborIndex(t *testing.T, dx, dy int) int {
	t.Helper()
	for i, off := range neighborOffsets {
		if off[0] == dx && off[1] == dy {
			return i
		}
	}
	t.Fatalf("no neighbour offset (%d,%d)", dx, dy)
	return -1
}

func quietParams() Params {
	return Params{}
}

func TestFireIgnitesOilEventually(t *testing.T) {
	params := quietParams()
	g := NewGrid(2, 1)
	g.Set(0, 0, Fire)
	g.Set(1, 0, Oil)

	e := newTestEngine(9, params)
	for i := 0; i < 300 && g.Count(Oil) > 0; i++ {
		e.Step(g)
	}
	assert.Zero(t, g.Count(Oil))
	assert.Equal(t, 2, g.Count(Fire))
}

func TestFireIgnitionLikelyWithDefaultBurnout(t *testing.T) {
	const runs = 300
	ignited := 0
	for seed := int64(1); seed <= runs; seed++ {
		g := NewGrid(2, 1)
		g.Set(0, 0, Fire)
		g.Set(1, 0, Oil)
		e := newTestEngine(seed, DefaultParams())
		for i := 0; i < 400; i++ {
			e.Step(g)
			if g.Count(Oil) == 0 {
				ignited++
				break
			}
		}
	}
	assert.Greater(t, ignited, runs/2, "oil ignited in %d/%d runs", ignited, runs)
}

func TestFireBurnsOutToAshOrSmoke(t *testing.T) {
	for _, c := range []struct {
		share float64
		want  ParticleType
	}{
		{share: 0, want: Ash},
		{share: 1, want: Smoke},
	} {
		params := quietParams()
		params.FireBurnoutChance = 1
		params.FireSmokeShare = c.share

		g := NewGrid(3, 3)
		g.Set(1, 1, Fire)
		newTestEngine(2, params).Step(g)

		assert.Equal(t, c.want, at(g, 1, 1))
		assert.Zero(t, g.Count(Fire))
	}
}

func TestFireDoesNotSpreadIntoEmptyByDefault(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Fire)
	e := newTestEngine(4, quietParams())
	for i := 0; i < 50; i++ {
		e.Step(g)
	}
	assert.Equal(t, 1, g.Count(Fire))
	assert.True(t, g.IsActive(1, 1), "idle fire must stay scheduled")
}

func TestFireEmbersSpreadWhenEnabled(t *testing.T) {
	params := quietParams()
	params.FireEmberChance = 1
	g := NewGrid(3, 3)
	g.Set(1, 1, Fire)

	newTestEngine(4, params).Step(g)

	assert.Equal(t, 2, g.Count(Fire))
}

func TestPlantGrowsDownward(t *testing.T) {
	params := quietParams()
	params.PlantGrowthChance = 1
	g := NewGrid(1, 3)
	g.Set(0, 0, Plant)

	newTestEngine(1, params).Step(g)

	assert.Equal(t, Plant, at(g, 0, 0))
	assert.Equal(t, Plant, at(g, 0, 1))
	assert.Equal(t, Empty, at(g, 0, 2))
}

func TestPlantTurnsToAshNextToFire(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, Plant)
	g.Set(1, 0, Fire)

	rng := fixedRandom{f: 0.99, n: neighborIndex(t, 1, 0)}
	NewEngine(nil, rng, quietParams()).Step(g)

	assert.Equal(t, Ash, at(g, 0, 0))
	assert.Equal(t, Fire, at(g, 1, 0))
}

func TestPlantIsIgnitedByFireFirst(t *testing.T) {
	// Fire is evaluated before the plant when it comes first in row-major
	// order; the plant's cell is then already written and keeps the flame.
	g := NewGrid(2, 1)
	g.Set(0, 0, Fire)
	g.Set(1, 0, Plant)

	rng := fixedRandom{f: 0.99, n: neighborIndex(t, 1, 0)}
	NewEngine(nil, rng, quietParams()).Step(g)

	assert.Equal(t, 2, g.Count(Fire))
}

func TestIdlePlantStaysScheduled(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Plant)
	g.Set(1, 2, Stone)

	e := newTestEngine(1, DefaultParams())
	e.Step(g)
	e.Step(g)

	assert.True(t, g.IsActive(1, 1))
	assert.Equal(t, 1, g.Count(Plant))
}

func TestSmokeRisesOrDissipates(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGrid(5, 12)
		g.Set(2, 11, Smoke)
		e := newTestEngine(seed, DefaultParams())

		x, y := 2, 11
		for tick := 0; tick < 200; tick++ {
			e.Step(g)
			if g.Count(Smoke) == 0 {
				break
			}
			require.Equal(t, 1, g.Count(Smoke))
			nx, ny := findFirst(g, Smoke)
			require.LessOrEqual(t, ny, y, "seed %d tick %d: smoke moved down", seed, tick)
			if ny == y {
				require.Equal(t, x, nx, "seed %d tick %d: smoke drifted sideways", seed, tick)
			}
			x, y = nx, ny
		}
		if g.Count(Smoke) == 1 {
			_, y := findFirst(g, Smoke)
			assert.Zero(t, y, "seed %d: surviving smoke should reach the top", seed)
		}
	}
}

func TestSmokeClimbsDiagonallyWhenBlocked(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 1, Smoke)
	g.Set(1, 0, Stone)

	rng := fixedRandom{f: 0.99, b: true}
	NewEngine(nil, rng, DefaultParams()).Step(g)

	assert.Equal(t, Smoke, at(g, 2, 0))
	assert.Equal(t, Empty, at(g, 1, 1))
}

func TestSmokeDissipates(t *testing.T) {
	params := quietParams()
	params.SmokeDissipateChance = 1
	g := NewGrid(1, 1)
	g.Set(0, 0, Smoke)

	newTestEngine(1, params).Step(g)

	assert.Equal(t, Empty, at(g, 0, 0))
}

func findFirst(g *Grid, t ParticleType) (int, int) {
	for i, c := range g.Cells() {
		if c == t {
			return g.Size().Coord(i)
		}
	}
	return -1, -1
}
