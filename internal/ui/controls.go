package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"torus-life/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	infoHeight     = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

// controlState tracks one HUD control: its last known value and where its
// buttons sit on the panel.
type controlState struct {
	control  core.ParameterControl
	value    string
	num      float64
	hasValue bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func layoutControls(ctrls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(ctrls))
	for i, ctrl := range ctrls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, value: "--", top: top, minus: minus, plus: plus}
	}
	return states
}

// refresh pulls the control's current value out of a snapshot.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.set(float64(parsed))
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.set(parsed)
	}
}

func (s *controlState) set(v float64) {
	s.num = v
	s.value = formatValue(s.control, v)
	s.hasValue = true
}

func (s *controlState) step() float64 {
	step := s.control.Step
	if s.control.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
		return step
	}
	if step <= 0 {
		step = 0.05
	}
	return step
}

// target returns the value one step in direction, clamped to the control's
// bounds. It reports false when the value would not change.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	v := s.num + float64(direction)*s.step()
	if s.control.HasMin && v < s.control.Min {
		v = s.control.Min
	}
	if s.control.HasMax && v > s.control.Max {
		v = s.control.Max
	}
	if math.Abs(v-s.num) < 1e-9 {
		return 0, false
	}
	return v, true
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	step := ctrl.Step
	precision := 1
	switch {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// infoLines renders every snapshot parameter that is not already shown as a
// control.
func infoLines(snap core.ParameterSnapshot, controls []controlState) []string {
	shown := make(map[string]bool, len(controls))
	for _, c := range controls {
		shown[c.control.Key] = true
	}
	var lines []string
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			if shown[param.Key] {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s", param.Label, param.Value))
		}
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// CellAt maps a cursor position in screen pixels to grid coordinates for a
// grid drawn at cell pixels per cell from the origin.
func CellAt(mx, my, cell int, size core.Size) (int, int, bool) {
	if cell <= 0 || mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y := mx/cell, my/cell
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
