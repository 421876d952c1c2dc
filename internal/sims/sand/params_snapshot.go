package sand

import (
	"strconv"

	"sandca/internal/core"
)

func (s *Sandbox) Parameters() core.ParameterSnapshot {
	params := s.engine.Params()
	stats := s.engine.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Reactions",
			Params: []core.Parameter{
				floatParam("plant_growth_chance", "Plant growth chance", params.PlantGrowthChance),
				floatParam("fire_burnout_chance", "Fire burnout chance", params.FireBurnoutChance),
				floatParam("fire_smoke_share", "Fire smoke share", params.FireSmokeShare),
				floatParam("fire_ember_chance", "Fire ember chance", params.FireEmberChance),
				floatParam("smoke_dissipate_chance", "Smoke dissipate chance", params.SmokeDissipateChance),
			},
		},
		{
			Name:    "Activity",
			Summary: "last tick",
			Params: []core.Parameter{
				int64Param("tick", "Tick", int64(stats.Tick)),
				intParam("evaluated", "Evaluated", stats.Evaluated),
				intParam("changed", "Changed", stats.Changed),
				intParam("active", "Active", stats.Active),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the reaction probabilities as HUD controls.
func (s *Sandbox) ParameterControls() []core.ParameterControl {
	probability := func(key, label string, step float64) core.ParameterControl {
		return core.ParameterControl{
			Key:    key,
			Label:  label,
			Type:   core.ParamTypeFloat,
			Step:   step,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		}
	}
	return []core.ParameterControl{
		probability("plant_growth_chance", "Plant growth", 0.005),
		probability("fire_burnout_chance", "Fire burnout", 0.01),
		probability("fire_smoke_share", "Fire smoke share", 0.05),
		probability("fire_ember_chance", "Fire embers", 0.005),
		probability("smoke_dissipate_chance", "Smoke dissipate", 0.005),
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
	}
}

// SetFloatParameter updates a reaction probability, clamped to [0, 1].
func (s *Sandbox) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	params := s.engine.Params()
	switch key {
	case "plant_growth_chance":
		params.PlantGrowthChance = value
	case "fire_burnout_chance":
		params.FireBurnoutChance = value
	case "fire_smoke_share":
		params.FireSmokeShare = value
	case "fire_ember_chance":
		params.FireEmberChance = value
	case "smoke_dissipate_chance":
		params.SmokeDissipateChance = value
	default:
		return false
	}
	s.engine.SetParams(params)
	s.cfg.Params = params
	return true
}

// SetIntParameter updates the configured seed. It takes effect on the next
// reset that does not name a seed of its own.
func (s *Sandbox) SetIntParameter(key string, value int) bool {
	if key != "seed" {
		return false
	}
	s.cfg.Seed = int64(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
