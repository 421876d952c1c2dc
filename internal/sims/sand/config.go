package sand

import (
	"strconv"
	"strings"
)

// Params holds the probabilities that drive the reactive particle rules.
type Params struct {
	PlantGrowthChance    float64
	FireBurnoutChance    float64
	FireSmokeShare       float64
	FireEmberChance      float64
	SmokeDissipateChance float64
}

// DefaultParams returns the standard reaction probabilities.
func DefaultParams() Params {
	return Params{
		PlantGrowthChance:    0.02,
		FireBurnoutChance:    0.05,
		FireSmokeShare:       0.3,
		FireEmberChance:      0,
		SmokeDissipateChance: 0.02,
	}
}

// Config controls the sand simulation dimensions, seeding and rules.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Scene string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1337,
		Scene:  SceneDemo,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if scene := strings.ToLower(strings.TrimSpace(v)); validScene(scene) {
			c.Scene = scene
		}
	}
	probability := func(key string, dst *float64) {
		v, ok := cfg[key]
		if !ok {
			return
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			*dst = parsed
		}
	}
	probability("plant_growth_chance", &c.Params.PlantGrowthChance)
	probability("fire_burnout_chance", &c.Params.FireBurnoutChance)
	probability("fire_smoke_share", &c.Params.FireSmokeShare)
	probability("fire_ember_chance", &c.Params.FireEmberChance)
	probability("smoke_dissipate_chance", &c.Params.SmokeDissipateChance)
	return c
}
