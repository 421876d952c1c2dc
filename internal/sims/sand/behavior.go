package sand

// neighborOffsets enumerates the Moore neighbourhood.
var neighborOffsets = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// reactive reports whether t has bespoke rules in react.
func reactive(t ParticleType) bool {
	switch t {
	case Plant, Fire, Smoke:
		return true
	}
	return false
}

// react runs the bespoke rule for the particle at (x, y), if any. It reports
// whether the cell's turn was consumed.
func (p *pass) react(x, y int, t ParticleType) bool {
	switch t {
	case Plant:
		return p.plant(x, y)
	case Fire:
		return p.fire(x, y)
	case Smoke:
		return p.smoke(x, y)
	}
	return false
}

func (p *pass) randomNeighbor(x, y int) (int, int) {
	off := neighborOffsets[p.rng.IntN(len(neighborOffsets))]
	return x + off[0], y + off[1]
}

// plant grows downward into empty space and turns to ash next to fire.
func (p *pass) plant(x, y int) bool {
	if chance(p.rng, p.params.PlantGrowthChance) {
		if below, ok := p.read(x, y+1); ok && below == Empty && p.put(x, y+1, Plant) {
			return true
		}
	}
	nx, ny := p.randomNeighbor(x, y)
	if n, ok := p.read(nx, ny); ok && n == Fire {
		return p.put(x, y, Ash)
	}
	return false
}

// fire burns out into ash or smoke, or spreads to fuel next to it.
func (p *pass) fire(x, y int) bool {
	if chance(p.rng, p.params.FireBurnoutChance) {
		residue := Ash
		if chance(p.rng, p.params.FireSmokeShare) {
			residue = Smoke
		}
		return p.put(x, y, residue)
	}
	nx, ny := p.randomNeighbor(x, y)
	n, ok := p.read(nx, ny)
	if !ok {
		return false
	}
	switch n {
	case Plant, Oil:
		if p.next[p.g.size.Index(nx, ny)] != Fire {
			return p.put(nx, ny, Fire)
		}
	case Empty:
		if chance(p.rng, p.params.FireEmberChance) {
			return p.put(nx, ny, Fire)
		}
	}
	return false
}

// smoke dissipates or climbs into empty space straight up, then diagonally.
func (p *pass) smoke(x, y int) bool {
	if chance(p.rng, p.params.SmokeDissipateChance) {
		return p.put(x, y, Empty)
	}
	if above, ok := p.read(x, y-1); ok && above == Empty && p.swap(x, y, x, y-1) {
		return true
	}
	d := sign(p.rng)
	if diag, ok := p.read(x+d, y-1); ok && diag == Empty && p.swap(x, y, x+d, y-1) {
		return true
	}
	return false
}
