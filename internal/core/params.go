package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the first parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Index flattens the snapshot into a key lookup table.
func (s ParameterSnapshot) Index() map[string]Parameter {
	out := map[string]Parameter{}
	for _, group := range s.Groups {
		for _, p := range group.Params {
			out[p.Key] = p
		}
	}
	return out
}

// ParameterProvider exposes a snapshot of the tunables of a sim.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ResetSeed returns the non-zero seed a sim reports through its "seed"
// parameter, so a seed adjusted on the HUD is used by the next reset. It
// returns fallback when the sim reports none.
func ResetSeed(sim Sim, fallback int64) int64 {
	provider, ok := sim.(ParameterProvider)
	if !ok {
		return fallback
	}
	p, ok := provider.Parameters().Lookup("seed")
	if !ok {
		return fallback
	}
	seed, err := strconv.ParseInt(p.Value, 10, 64)
	if err != nil || seed == 0 {
		return fallback
	}
	return seed
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
