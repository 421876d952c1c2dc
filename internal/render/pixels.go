package render

import "image/color"

// FillMask converts a boolean mask into RGBA pixels in buf. Set cells take
// on and the rest take off.
func FillMask(buf []byte, mask []bool, on, off color.RGBA) {
	for i, set := range mask {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		col := off
		if set {
			col = on
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillPalette converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values
// past the end of the palette use its last entry.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			if base+3 >= len(buf) {
				return
			}
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// GrayPalette returns an n-entry ramp from black to white for sims that do
// not provide their own colours.
func GrayPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = color.RGBA{A: 255}
		return out
	}
	for i := range out {
		v := uint8(i * 255 / (n - 1))
		out[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return out
}
