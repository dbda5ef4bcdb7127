package life

import "torus-life/internal/core"

// Parameters reports the world settings and live statistics for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("n", "Size", l.n),
				core.Int64Param("seed", "Seed", l.seed),
				core.FloatParam("density", "Density", l.density),
				core.StringParam("rule", "Rule", l.rule.String()),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.gen),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}

// ParameterControls exposes the random fill density; it applies on the next
// random reset.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "density",
			Label:  "Density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates the fill density.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	l.density = value
	return true
}
