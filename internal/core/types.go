package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// CellEditor is implemented by sims whose cells can be edited by hand.
// Coordinates outside the grid are rejected and reported as false.
type CellEditor interface {
	SetCell(x, y int, alive bool) bool
	ToggleCell(x, y int) bool
	Clear()
}

// Randomizer is implemented by sims that can replace their board with a
// fresh random fill, dropping any pattern Reset would otherwise restore.
type Randomizer interface {
	Randomize(seed int64)
}

// Stats is implemented by sims that track a generation counter and the
// number of live cells.
type Stats interface {
	Generation() int
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up a registered factory and builds the sim it describes.
func New(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, errors.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	sim, err := factory(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "build sim %q", name)
	}
	return sim, nil
}
