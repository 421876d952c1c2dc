package ui

import (
	"image"
	"math"
	"strconv"

	"sandca/internal/core"
)

// ControlState tracks the displayed value of one adjustable parameter.
type ControlState struct {
	Control core.ParameterControl
	Value   string

	IntValue   int
	FloatValue float64
	HasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewControlStates wraps the controls exposed by a sim with empty values.
func NewControlStates(controls []core.ParameterControl) []ControlState {
	out := make([]ControlState, len(controls))
	for i, ctrl := range controls {
		out[i] = ControlState{Control: ctrl, Value: "--"}
	}
	return out
}

// Refresh updates the cached value from a snapshot index.
func (s *ControlState) Refresh(params map[string]core.Parameter) {
	param, ok := params[s.Control.Key]
	if !ok {
		s.clear()
		return
	}
	switch s.Control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			s.clear()
			return
		}
		s.IntValue = parsed
		s.FloatValue = float64(parsed)
		s.Value = strconv.Itoa(parsed)
		s.HasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			s.clear()
			return
		}
		s.FloatValue = parsed
		s.Value = FormatFloat(s.Control, parsed)
		s.HasValue = true
	default:
		s.clear()
	}
}

func (s *ControlState) clear() {
	s.HasValue = false
	s.Value = "--"
}

func (s *ControlState) intTarget(direction int) int {
	step := int(math.Round(s.Control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.IntValue + direction*step
	if s.Control.HasMin {
		if min := int(math.Round(s.Control.Min)); target < min {
			target = min
		}
	}
	if s.Control.HasMax {
		if max := int(math.Round(s.Control.Max)); target > max {
			target = max
		}
	}
	return target
}

func (s *ControlState) floatTarget(direction int) float64 {
	step := s.Control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.FloatValue + float64(direction)*step
	if s.Control.HasMin && target < s.Control.Min {
		target = s.Control.Min
	}
	if s.Control.HasMax && target > s.Control.Max {
		target = s.Control.Max
	}
	return target
}

// CanAdjust reports whether a step in direction would change the value.
func (s *ControlState) CanAdjust(direction int) bool {
	if !s.HasValue || direction == 0 {
		return false
	}
	switch s.Control.Type {
	case core.ParamTypeInt:
		return s.intTarget(direction) != s.IntValue
	case core.ParamTypeFloat:
		return math.Abs(s.floatTarget(direction)-s.FloatValue) >= 1e-9
	}
	return false
}

// Adjust steps the value in direction through the matching setter. It
// returns true when the sim accepted the new value.
func (s *ControlState) Adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !s.CanAdjust(direction) {
		return false
	}
	switch s.Control.Type {
	case core.ParamTypeInt:
		if ints == nil {
			return false
		}
		target := s.intTarget(direction)
		if !ints.SetIntParameter(s.Control.Key, target) {
			return false
		}
		s.IntValue = target
		s.FloatValue = float64(target)
		s.Value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		if floats == nil {
			return false
		}
		target := s.floatTarget(direction)
		if !floats.SetFloatParameter(s.Control.Key, target) {
			return false
		}
		s.FloatValue = target
		s.Value = FormatFloat(s.Control, target)
	default:
		return false
	}
	return true
}

// FormatFloat renders value with a precision derived from the control step.
func FormatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
