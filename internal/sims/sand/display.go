package sand

import "image/color"

var sandPalette = buildPalette()

// Palette exposes the colour table indexed by ParticleType.
func (s *Sandbox) Palette() []color.RGBA {
	return sandPalette
}

// Color returns the display colour of t.
func Color(t ParticleType) color.RGBA {
	if !t.Valid() {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return sandPalette[t]
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, NumTypes)
	for _, t := range Types() {
		palette[t] = paletteColorFor(t)
	}
	return palette
}

func paletteColorFor(t ParticleType) color.RGBA {
	switch t {
	case Stone:
		return color.RGBA{R: 159, G: 159, B: 159, A: 255}
	case Sand:
		return color.RGBA{R: 232, G: 217, B: 179, A: 255}
	case Water:
		return color.RGBA{R: 0, G: 100, B: 200, A: 255}
	case Salt:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case Plant:
		return color.RGBA{R: 34, G: 139, B: 34, A: 255}
	case Oil:
		return color.RGBA{R: 50, G: 40, B: 30, A: 255}
	case Fire:
		return color.RGBA{R: 255, G: 99, B: 71, A: 255}
	case Ash:
		return color.RGBA{R: 40, G: 40, B: 40, A: 255}
	case Smoke:
		return color.RGBA{R: 80, G: 80, B: 80, A: 255}
	case Empty:
		fallthrough
	default:
		return color.RGBA{A: 255}
	}
}
