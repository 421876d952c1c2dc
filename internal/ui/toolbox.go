package ui

import (
	"fmt"
	"strings"

	"sandca/internal/core"
)

// MaxBrushSize bounds the brush diameter.
const MaxBrushSize = 31

// Toolbox holds the drawing tool selected by an input adapter: the current
// material, brush size and shape.
type Toolbox struct {
	materials []core.Material
	index     int
	size      int
	shape     core.ToolShape
}

// NewToolbox builds a toolbox over the materials of sim. Sims that cannot be
// edited yield an empty toolbox. The first material named preferred is
// selected when present.
func NewToolbox(sim core.Sim, preferred string) *Toolbox {
	t := &Toolbox{size: 3}
	editable, ok := sim.(core.Editable)
	if !ok {
		return t
	}
	t.materials = editable.Materials()
	for i, m := range t.materials {
		if strings.EqualFold(m.Name, preferred) {
			t.index = i
			break
		}
	}
	return t
}

// Enabled reports whether there is anything to paint with.
func (t *Toolbox) Enabled() bool { return len(t.materials) > 0 }

// Materials lists the selectable materials.
func (t *Toolbox) Materials() []core.Material { return t.materials }

// Index returns the selected material position.
func (t *Toolbox) Index() int { return t.index }

// Material returns the selected material.
func (t *Toolbox) Material() core.Material {
	if !t.Enabled() {
		return core.Material{}
	}
	return t.materials[t.index]
}

// Select picks the material at position i.
func (t *Toolbox) Select(i int) bool {
	if i < 0 || i >= len(t.materials) {
		return false
	}
	t.index = i
	return true
}

// SelectDigit maps the keyboard digit row onto materials: '1' is the first
// material and '0' the tenth.
func (t *Toolbox) SelectDigit(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		return t.Select(int(r - '1'))
	case r == '0':
		return t.Select(9)
	}
	return false
}

// Resize grows or shrinks the brush, keeping it within [1, MaxBrushSize].
func (t *Toolbox) Resize(delta int) {
	t.size += delta
	if t.size < 1 {
		t.size = 1
	}
	if t.size > MaxBrushSize {
		t.size = MaxBrushSize
	}
}

// ToggleShape flips between square and circle brushes.
func (t *Toolbox) ToggleShape() {
	if t.shape == core.ToolCircle {
		t.shape = core.ToolSquare
		return
	}
	t.shape = core.ToolCircle
}

// Tool returns the edit tool for the current selection.
func (t *Toolbox) Tool() core.Tool {
	return core.Tool{Value: t.Material().Value, Size: t.size, Shape: t.shape}
}

// Label summarises the selection for status lines.
func (t *Toolbox) Label() string {
	if !t.Enabled() {
		return "no tools"
	}
	shape := "square"
	if t.shape == core.ToolCircle {
		shape = "circle"
	}
	return fmt.Sprintf("%s %d %s", t.Material().Name, t.size, shape)
}
