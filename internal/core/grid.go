package core

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Area returns the number of cells in a grid of this size.
func (s Size) Area() int { return s.W * s.H }

// Index returns the linear slice index for coordinates (x, y) in row-major order.
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coord converts a row-major index back into coordinates.
func (s Size) Coord(i int) (int, int) {
	if s.W <= 0 {
		return 0, 0
	}
	return i % s.W, i / s.W
}

// Clamp returns a size with both dimensions forced to at least one cell.
func (s Size) Clamp() Size {
	if s.W <= 0 {
		s.W = 1
	}
	if s.H <= 0 {
		s.H = 1
	}
	return s
}

// Neighborhood calls fn with the index of every in-bounds cell of the 3x3
// block centred on (x, y), the centre included.
func (s Size) Neighborhood(x, y int, fn func(i int)) {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= s.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= s.W {
				continue
			}
			fn(ny*s.W + nx)
		}
	}
}
