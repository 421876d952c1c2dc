package sand

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandca/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                   "64",
		"h":                   "-3",
		"seed":                "99",
		"scene":               " EMPTY ",
		"fire_burnout_chance": "0.2",
		"fire_smoke_share":    "1.5",
		"plant_growth_chance": "abc",
	})
	def := DefaultConfig()
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, def.Height, c.Height, "negative height keeps the default")
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, SceneEmpty, c.Scene)
	assert.Equal(t, 0.2, c.Params.FireBurnoutChance)
	assert.Equal(t, def.Params.FireSmokeShare, c.Params.FireSmokeShare, "probabilities above 1 are rejected")
	assert.Equal(t, def.Params.PlantGrowthChance, c.Params.PlantGrowthChance)

	assert.Equal(t, def, FromMap(nil))
	assert.Equal(t, SceneDemo, FromMap(map[string]string{"scene": "volcano"}).Scene)
}

func TestRegisteredFactory(t *testing.T) {
	factory, err := core.Lookup("sand")
	require.NoError(t, err)

	sim := factory(map[string]string{"w": "32", "h": "24", "scene": "empty"})
	assert.Equal(t, "sand", sim.Name())
	assert.Equal(t, core.Size{W: 32, H: 24}, sim.Size())
	assert.Len(t, sim.Cells(), 32*24)

	_, ok := sim.(core.Editable)
	assert.True(t, ok, "sandbox must accept edits")
	_, ok = sim.(core.PaletteProvider)
	assert.True(t, ok, "sandbox must provide a palette")
	_, ok = sim.(core.ActivityProvider)
	assert.True(t, ok, "sandbox must expose its schedule")
	_, ok = sim.(core.ParameterControlsProvider)
	assert.True(t, ok, "sandbox must expose HUD controls")
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	s := NewWithConfig(cfg)

	s.Reset(0)
	first := slices.Clone(s.Cells())
	require.Positive(t, s.Grid().Count(Stone))
	require.Positive(t, s.Grid().Count(Sand))
	require.Positive(t, s.Grid().Count(Plant))
	require.Equal(t, 1, s.Grid().Count(Fire))

	for i := 0; i < 20; i++ {
		s.Step()
	}
	s.Reset(0)
	assert.Equal(t, first, s.Cells(), "reset with the config seed must rebuild the same scene")

	s.Reset(5)
	seeded := slices.Clone(s.Cells())
	s.Reset(5)
	assert.Equal(t, seeded, s.Cells())
	assert.NotEqual(t, first, seeded, "different seeds should scatter differently")
}

func TestDemoRunsReproducibly(t *testing.T) {
	run := func() []uint8 {
		cfg := DefaultConfig()
		cfg.Width = 48
		cfg.Height = 40
		s := NewWithConfig(cfg)
		s.Reset(11)
		for i := 0; i < 120; i++ {
			s.Step()
		}
		return slices.Clone(s.Cells())
	}
	assert.Equal(t, run(), run())
}

func TestEmptySceneTinyGrid(t *testing.T) {
	s := New(4, 4)
	s.Reset(0)
	assert.Equal(t, 16, s.Grid().Count(Empty), "demo scene is skipped on grids too small to hold it")
	s.Step()
	assert.Zero(t, s.Stats().Evaluated)
}

func TestPaintUsesTool(t *testing.T) {
	s := NewWithConfig(FromMap(map[string]string{"w": "20", "h": "20", "scene": "empty"}))
	s.Reset(0)

	changed := s.Paint(10, 10, 10, 10, core.Tool{Value: uint8(Water), Size: 5, Shape: core.ToolCircle})
	assert.Equal(t, 13, changed)
	assert.Equal(t, 13, s.Grid().Count(Water))
	assert.Equal(t, uint8(Water), s.Cells()[s.Size().Index(10, 10)])
	assert.True(t, s.ActiveMask()[s.Size().Index(10, 10)])

	assert.Zero(t, s.Paint(0, 0, 5, 5, core.Tool{Value: 250, Size: 1}), "invalid materials are ignored")
}

func TestMaterialsCoverEveryType(t *testing.T) {
	mats := New(8, 8).Materials()
	require.Len(t, mats, int(NumTypes))
	for i, m := range mats {
		assert.Equal(t, uint8(i), m.Value)
		assert.Equal(t, ParticleType(i).String(), m.Name)
	}
}

func TestPaletteMatchesTypes(t *testing.T) {
	s := New(8, 8)
	palette := s.Palette()
	require.Len(t, palette, int(NumTypes))
	assert.Equal(t, Color(Water), palette[Water])
	assert.NotEqual(t, palette[Sand], palette[Stone])
	for _, c := range palette {
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	s := New(8, 8)

	require.True(t, s.SetFloatParameter("fire_burnout_chance", 0.5))
	assert.Equal(t, 0.5, s.Engine().Params().FireBurnoutChance)
	assert.Equal(t, 0.5, s.Config().Params.FireBurnoutChance)

	require.True(t, s.SetFloatParameter("smoke_dissipate_chance", 3))
	assert.Equal(t, 1.0, s.Engine().Params().SmokeDissipateChance)

	require.True(t, s.SetFloatParameter("plant_growth_chance", -1))
	assert.Equal(t, 0.0, s.Engine().Params().PlantGrowthChance)

	assert.False(t, s.SetFloatParameter("gravity", 1))
}

func TestSetIntParameterSeed(t *testing.T) {
	s := New(32, 24)
	require.True(t, s.SetIntParameter("seed", 77))
	assert.Equal(t, int64(77), s.Config().Seed)
	assert.False(t, s.SetIntParameter("w", 10))

	s.Reset(0)
	want := New(32, 24)
	want.Reset(77)
	assert.Equal(t, want.Cells(), s.Cells(), "a zero-seed reset uses the adjusted seed")
}

func TestResetRecordsSeedAndClearsStats(t *testing.T) {
	s := New(32, 24)
	s.Reset(42)
	assert.Equal(t, int64(42), s.Config().Seed)
	p, ok := s.Parameters().Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "42", p.Value)

	for i := 0; i < 5; i++ {
		s.Step()
	}
	require.Equal(t, uint64(5), s.Stats().Tick)

	s.Reset(0)
	assert.Equal(t, Stats{}, s.Stats())
	tick, _ := s.Parameters().Lookup("tick")
	assert.Equal(t, "0", tick.Value)
}

func TestParametersSnapshot(t *testing.T) {
	s := New(16, 16)
	s.Reset(0)
	s.Step()

	values := map[string]core.Parameter{}
	for _, group := range s.Parameters().Groups {
		for _, p := range group.Params {
			values[p.Key] = p
		}
	}
	require.Contains(t, values, "fire_burnout_chance")
	assert.Equal(t, core.ParamTypeFloat, values["fire_burnout_chance"].Type)
	assert.Equal(t, "0.05", values["fire_burnout_chance"].Value)
	assert.Equal(t, "1", values["tick"].Value)
	assert.Equal(t, "16", values["w"].Value)

	for _, ctrl := range s.ParameterControls() {
		_, ok := values[ctrl.Key]
		assert.True(t, ok, "control %q has no snapshot value", ctrl.Key)
	}
}
