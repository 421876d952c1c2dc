package sand

import "strings"

// ParticleType identifies the material held by a cell.
type ParticleType uint8

const (
	Empty ParticleType = iota
	Stone
	Sand
	Water
	Salt
	Plant
	Oil
	Fire
	Ash
	Smoke

	// NumTypes is the size of the closed ParticleType enumeration.
	NumTypes
)

var typeNames = [NumTypes]string{
	Empty: "empty",
	Stone: "stone",
	Sand:  "sand",
	Water: "water",
	Salt:  "salt",
	Plant: "plant",
	Oil:   "oil",
	Fire:  "fire",
	Ash:   "ash",
	Smoke: "smoke",
}

// Valid reports whether t belongs to the enumeration.
func (t ParticleType) Valid() bool { return t < NumTypes }

func (t ParticleType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return typeNames[t]
}

// ParseType resolves a case-insensitive particle name.
func ParseType(name string) (ParticleType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return ParticleType(i), true
		}
	}
	return Empty, false
}

// Types lists every particle type in enumeration order.
func Types() []ParticleType {
	out := make([]ParticleType, NumTypes)
	for i := range out {
		out[i] = ParticleType(i)
	}
	return out
}

// Phase is the coarse movement class of a particle type.
type Phase uint8

const (
	// Solid particles sink and slide diagonally.
	Solid Phase = iota
	// Liquid particles also spread sideways.
	Liquid
	// Gas particles move like liquids; negative density makes them light.
	Gas
	// Static particles never move.
	Static
)

func (p Phase) String() string {
	switch p {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	case Static:
		return "static"
	default:
		return "invalid"
	}
}

// Profile holds the immutable physical attributes of a particle type.
type Profile struct {
	Density float64
	Phase   Phase
}

// Flows reports whether the phase diffuses horizontally.
func (p Profile) Flows() bool { return p.Phase == Liquid || p.Phase == Gas }
