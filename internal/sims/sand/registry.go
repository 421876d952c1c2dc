package sand

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrIncompleteRegistry is returned when a particle type has no profile.
	ErrIncompleteRegistry = errors.New("incomplete particle registry")
	// ErrUnknownType is returned when a profile is keyed by a value outside
	// the enumeration.
	ErrUnknownType = errors.New("unknown particle type")
	// ErrInvalidProfile is returned for profiles with unusable attributes.
	ErrInvalidProfile = errors.New("invalid particle profile")
)

// immovable is served for values outside the enumeration: nothing can
// displace it and it never moves.
var immovable = Profile{Density: math.Inf(1), Phase: Static}

// Registry is a total lookup table from ParticleType to Profile. It is
// immutable once constructed.
type Registry struct {
	profiles [NumTypes]Profile
}

// DefaultProfiles returns the standard physical table.
func DefaultProfiles() map[ParticleType]Profile {
	return map[ParticleType]Profile{
		Empty: {Density: 0, Phase: Gas},
		Stone: {Density: 2.4, Phase: Static},
		Sand:  {Density: 2.65, Phase: Solid},
		Water: {Density: 1.0, Phase: Liquid},
		Salt:  {Density: 2.16, Phase: Solid},
		Plant: {Density: 0.5, Phase: Static},
		Oil:   {Density: 0.85, Phase: Liquid},
		Fire:  {Density: -0.5, Phase: Gas},
		Ash:   {Density: 2.5, Phase: Solid},
		Smoke: {Density: -0.2, Phase: Gas},
	}
}

var defaultRegistry = MustRegistry(DefaultProfiles())

// DefaultRegistry returns the shared registry built from DefaultProfiles.
func DefaultRegistry() *Registry { return defaultRegistry }

// NewRegistry validates that profiles covers every particle type exactly
// and nothing else.
func NewRegistry(profiles map[ParticleType]Profile) (*Registry, error) {
	r := &Registry{}
	for t, p := range profiles {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
		}
		if math.IsNaN(p.Density) || p.Phase > Static {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, t)
		}
		r.profiles[t] = p
	}
	for _, t := range Types() {
		if _, ok := profiles[t]; !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteRegistry, t)
		}
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on an invalid table. It is
// meant for package initialisation.
func MustRegistry(profiles map[ParticleType]Profile) *Registry {
	r, err := NewRegistry(profiles)
	if err != nil {
		panic(err)
	}
	return r
}

// Profile returns the attributes for t.
func (r *Registry) Profile(t ParticleType) Profile {
	if !t.Valid() {
		return immovable
	}
	return r.profiles[t]
}

// Density returns the density of t.
func (r *Registry) Density(t ParticleType) float64 { return r.Profile(t).Density }

// Phase returns the phase of t.
func (r *Registry) Phase(t ParticleType) Phase { return r.Profile(t).Phase }
