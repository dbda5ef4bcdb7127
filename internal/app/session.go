package app

import (
	"log"
	"time"

	"torus-life/internal/core"
)

// intervalStep is how much the faster/slower keys change the interval.
const intervalStep = 10 * time.Millisecond

// Session owns a running sim together with its scheduler and pause state.
// It contains no drawing code so the game loop logic can run headless.
//
// Session, like the sim it wraps, is driven from a single goroutine.
type Session struct {
	sim     core.Sim
	clock   *core.FixedStep
	history *core.History

	seed        int64
	paused      bool
	tickOnce    bool
	autoRestart bool
	restarts    int
	period      int

	// newSeed supplies seeds for fresh reseeds.
	newSeed func() int64
}

// NewSession wraps sim, which must already be initialised with cfg.Seed.
func NewSession(sim core.Sim, cfg Config) *Session {
	s := &Session{
		sim:         sim,
		clock:       core.NewFixedStep(cfg.Interval),
		history:     core.NewHistory(core.DefaultHistory),
		seed:        cfg.Seed,
		autoRestart: cfg.AutoRestart,
		newSeed:     func() int64 { return time.Now().UnixNano() },
	}
	s.history.Observe(sim.Cells())
	return s
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes automatic stepping.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume restarts automatic stepping.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single generation on the next tick.
func (s *Session) StepOnce() { s.tickOnce = true }

// Interval returns the delay between generations.
func (s *Session) Interval() time.Duration { return s.clock.Interval() }

// Faster shortens the delay between generations.
func (s *Session) Faster() { s.clock.SetInterval(s.clock.Interval() - intervalStep) }

// Slower lengthens the delay between generations.
func (s *Session) Slower() { s.clock.SetInterval(s.clock.Interval() + intervalStep) }

// Reset reinitializes the sim with seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.tickOnce = false
	s.forget()
}

// Restart reinitializes the sim with the last seed.
func (s *Session) Restart() { s.Reset(s.seed) }

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Reseed fills the sim at random from a fresh seed. A sim started from a
// pattern loses it, otherwise auto-restart would reload a settled pattern.
func (s *Session) Reseed() {
	seed := s.newSeed()
	r, ok := s.sim.(core.Randomizer)
	if !ok {
		s.Reset(seed)
		return
	}
	s.seed = seed
	r.Randomize(seed)
	s.tickOnce = false
	s.forget()
}

// Clear kills every cell when the sim supports editing.
func (s *Session) Clear() {
	if editor, ok := s.sim.(core.CellEditor); ok {
		editor.Clear()
		s.forget()
	}
}

// forget drops cycle tracking after the grid was replaced from outside Step.
func (s *Session) forget() {
	s.history.Reset()
	s.history.Observe(s.sim.Cells())
	s.period = 0
}

// Tick advances the sim when a step is due at now and reports whether it
// did. A pending single step runs even while paused.
func (s *Session) Tick(now time.Time) bool {
	switch {
	case s.tickOnce:
		s.tickOnce = false
	case s.paused:
		return false
	case !s.clock.ShouldStep(now):
		return false
	}
	s.sim.Step()
	s.period = s.history.Observe(s.sim.Cells())
	if s.autoRestart && (s.period > 0 || s.extinct()) {
		gen := -1
		if stats, ok := s.sim.(core.Stats); ok {
			gen = stats.Generation()
		}
		log.Printf("%s settled at generation %d (period %d), reseeding", s.sim.Name(), gen, s.period)
		s.restarts++
		s.Reseed()
	}
	return true
}

func (s *Session) extinct() bool {
	stats, ok := s.sim.(core.Stats)
	return ok && stats.Population() == 0
}

func (s *Session) state() string {
	switch {
	case s.paused:
		return "paused"
	case s.period == 1:
		return "still"
	case s.period > 1:
		return "cycling"
	}
	return "running"
}

// Parameters combines the sim's parameters with the scheduler's.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if provider, ok := s.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Scheduler",
		Params: []core.Parameter{
			core.DurationParam("interval_ms", "Interval ms", s.clock.Interval()),
			core.StringParam("state", "State", s.state()),
			core.IntParam("period", "Period", s.period),
			core.IntParam("restarts", "Restarts", s.restarts),
		},
	})
	return snap
}

// ParameterControls lists the sim's controls followed by the interval.
func (s *Session) ParameterControls() []core.ParameterControl {
	var ctrls []core.ParameterControl
	if provider, ok := s.sim.(core.ParameterControlsProvider); ok {
		ctrls = append(ctrls, provider.ParameterControls()...)
	}
	return append(ctrls, core.ParameterControl{
		Key:    "interval_ms",
		Label:  "Interval ms",
		Type:   core.ParamTypeInt,
		Step:   float64(intervalStep / time.Millisecond),
		Min:    float64(core.MinInterval / time.Millisecond),
		HasMin: true,
	})
}

// SetIntParameter handles the interval and forwards other keys to the sim.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key == "interval_ms" {
		s.clock.SetInterval(time.Duration(value) * time.Millisecond)
		return true
	}
	if setter, ok := s.sim.(core.IntParameterSetter); ok {
		return setter.SetIntParameter(key, value)
	}
	return false
}

// SetFloatParameter forwards to the sim.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if setter, ok := s.sim.(core.FloatParameterSetter); ok {
		return setter.SetFloatParameter(key, value)
	}
	return false
}
