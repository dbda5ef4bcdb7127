package life

import (
	"github.com/pkg/errors"

	"torus-life/internal/core"
)

// State is the value of a single cell.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Life implements Conway's Game of Life on an n×n torus. It keeps two
// equally sized buffers and swaps them after each generation, so a step only
// ever reads the previous generation.
//
// Life is not safe for concurrent use; the caller driving Step owns it.
type Life struct {
	n   int
	cur *core.ByteGrid
	nxt *core.ByteGrid

	rule    Rule
	gen     int
	seed    int64
	density float64
	pattern Pattern
}

// New returns an all-dead n×n grid using the Conway rule.
func New(n int) (*Life, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "grid size %d", n)
	}
	return &Life{
		n:       n,
		cur:     core.NewByteGrid(n, n),
		nxt:     core.NewByteGrid(n, n),
		rule:    Conway,
		density: DefaultDensity,
	}, nil
}

// NewRandom returns an n×n grid where each cell is alive with the given
// probability. The same seed always yields the same grid.
func NewRandom(n int, seed int64, density float64) (*Life, error) {
	l, err := New(n)
	if err != nil {
		return nil, err
	}
	l.density = density
	l.Randomize(seed)
	return l, nil
}

// NewFromPattern returns an n×n grid holding the pattern. Pattern
// coordinates wrap modulo n.
func NewFromPattern(n int, p Pattern) (*Life, error) {
	l, err := New(n)
	if err != nil {
		return nil, err
	}
	l.Load(p)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.n, H: l.n} }

// Cells exposes the current generation in row-major order. Values are 0 or 1.
// The slice is only valid until the next Step.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Snapshot returns a copy of the current generation.
func (l *Life) Snapshot() []uint8 {
	return append([]uint8(nil), l.cur.Cells()...)
}

// Rule returns the active rule.
func (l *Life) Rule() Rule { return l.rule }

// SetRule replaces the rule used by subsequent steps.
func (l *Life) SetRule(r Rule) { l.rule = r }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Seed returns the seed of the last random fill.
func (l *Life) Seed() int64 { return l.seed }

// Density returns the fill probability used by random resets.
func (l *Life) Density() float64 { return l.density }

// Reset reinitializes the board. Grids loaded from a pattern restore that
// pattern and ignore the seed; all others are randomized with it.
func (l *Life) Reset(seed int64) {
	if l.pattern != nil {
		l.Load(l.pattern)
		return
	}
	l.Randomize(seed)
}

// Randomize refills the board from seed using the configured density and
// forgets any loaded pattern.
func (l *Life) Randomize(seed int64) {
	l.seed = seed
	l.pattern = nil
	core.NewRNG(seed).FillDensity(l.cur.Cells(), l.density)
	l.gen = 0
}

// Load clears the board and writes the pattern onto it.
func (l *Life) Load(p Pattern) {
	l.cur.Clear()
	for pt, s := range p {
		if s == Alive {
			l.cur.Set(pt.X, pt.Y, 1)
		}
	}
	l.pattern = p
	l.gen = 0
}

// Clear kills every cell. A loaded pattern is kept, so Reset brings it back.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}

// CellState returns the state at (x, y). Coordinates must lie in [0, n).
func (l *Life) CellState(x, y int) (State, error) {
	if !l.cur.InBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) on %dx%d grid", x, y, l.n, l.n)
	}
	return State(l.cur.Cells()[l.cur.Index(x, y)]), nil
}

// Alive reports whether the cell at (x, y) is alive, wrapping coordinates.
func (l *Life) Alive(x, y int) bool { return l.cur.At(x, y) != 0 }

// SetCell sets the cell at (x, y). It reports false for coordinates outside
// the grid.
func (l *Life) SetCell(x, y int, alive bool) bool {
	if !l.cur.InBounds(x, y) {
		return false
	}
	var v uint8
	if alive {
		v = 1
	}
	l.cur.Cells()[l.cur.Index(x, y)] = v
	return true
}

// ToggleCell flips the cell at (x, y). It reports false for coordinates
// outside the grid.
func (l *Life) ToggleCell(x, y int) bool {
	if !l.cur.InBounds(x, y) {
		return false
	}
	return l.SetCell(x, y, !l.Alive(x, y))
}

// CountNeighbors returns the number of live cells among the eight toroidal
// neighbours of (x, y).
func (l *Life) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			count += int(l.cur.At(x+dx, y+dy))
		}
	}
	return count
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	n := l.n
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < n; y++ {
		row := y * n
		up := (y - 1 + n) % n * n
		down := (y + 1) % n * n
		for x := 0; x < n; x++ {
			left := (x - 1 + n) % n
			right := (x + 1) % n
			neighbors := int(cur[up+left]) + int(cur[up+x]) + int(cur[up+right]) +
				int(cur[row+left]) + int(cur[row+right]) +
				int(cur[down+left]) + int(cur[down+x]) + int(cur[down+right])
			nxt[row+x] = 0
			if l.rule.Next(cur[row+x] != 0, neighbors) {
				nxt[row+x] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := c.Build()
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
