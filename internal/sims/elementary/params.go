package elementary

import "torus-life/internal/core"

// Parameters reports the grid settings and live statistics for the HUD.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", e.w),
				core.IntParam("h", "Height", e.h),
				core.Int64Param("seed", "Seed", e.seed),
				core.IntParam("rule", "Rule", int(e.rule)),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", e.gen),
				core.IntParam("population", "Population", e.Population()),
			},
		},
	}}
}

// ParameterControls exposes the rule number.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "rule",
			Label:  "Rule",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    255,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter switches the rule between steps.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	e.rule = uint8(value)
	return true
}
