package core

import "image/color"

// ToolShape selects the footprint of a drawing tool.
type ToolShape uint8

const (
	// ToolSquare paints a filled square centred on the pointer.
	ToolSquare ToolShape = iota
	// ToolCircle paints a filled disc centred on the pointer.
	ToolCircle
)

// Tool is the drawing configuration owned by an input adapter. It is passed
// into every edit call instead of living in shared state.
type Tool struct {
	Value uint8
	Size  int
	Shape ToolShape
}

// Material names a cell value that a user can paint with.
type Material struct {
	Value uint8
	Name  string
}

// Editable is implemented by sims that accept direct edits between ticks.
// Paint draws a stroke from (x0, y0) to (x1, y1) and returns the number of
// cells that changed.
type Editable interface {
	Paint(x0, y0, x1, y1 int, tool Tool) int
	Materials() []Material
}

// PaletteProvider exposes the colour table used to render cell values.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// ActivityProvider exposes the cells scheduled for evaluation on the next tick.
type ActivityProvider interface {
	ActiveMask() []bool
}
