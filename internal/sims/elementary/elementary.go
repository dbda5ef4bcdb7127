package elementary

import (
	"strconv"

	"github.com/pkg/errors"

	"torus-life/internal/core"
)

const (
	// DefaultSize is the edge length used when none is configured.
	DefaultSize = 50
	// DefaultRule is Wolfram rule 150: each cell becomes the XOR of itself and
	// both neighbours.
	DefaultRule uint8 = 150
	// DefaultSeed seeds the initial random fill.
	DefaultSeed int64 = 42

	patternCenter = "center"
)

var (
	// ErrInvalidDimension is returned for a non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrInvalidRule is returned for rule numbers outside 0-255.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrUnknownPattern is returned for start patterns other than "center".
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
	Seed   int64
	// Pattern is empty for a random fill or "center" for one live cell in
	// the middle of every row.
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultSize, Height: DefaultSize, Rule: DefaultRule, Seed: DefaultSeed}
}

// FromMap populates a Config from a string map. "n" sets both dimensions and
// "w"/"h" override them individually. An empty rule keeps the default.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for _, key := range []string{"n", "w", "h"} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "parse %s %q", key, v)
		}
		switch key {
		case "n":
			c.Width, c.Height = parsed, parsed
		case "w":
			c.Width = parsed
		case "h":
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "parse seed %q", v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 255 {
			return c, errors.Wrapf(ErrInvalidRule, "rule %q must be a number in 0-255", v)
		}
		c.Rule = uint8(parsed)
	}
	if v, ok := cfg["pattern"]; ok {
		if v != "" && v != patternCenter {
			return c, errors.Wrapf(ErrUnknownPattern, "%q (available: %s)", v, patternCenter)
		}
		c.Pattern = v
	}
	return c, nil
}

// Build constructs the automaton described by the config.
func (c Config) Build() (*Elementary, error) {
	e, err := New(c.Width, c.Height, c.Rule)
	if err != nil {
		return nil, err
	}
	e.center = c.Pattern == patternCenter
	e.Reset(c.Seed)
	return e, nil
}

// Elementary runs a one-dimensional Wolfram rule on every row of the grid.
// Rows evolve independently and wrap at their ends.
type Elementary struct {
	w, h int
	rule uint8
	cur  *core.ByteGrid
	nxt  *core.ByteGrid

	gen    int
	seed   int64
	center bool
}

// New creates an all-dead automaton with the given dimensions and rule.
func New(w, h int, rule uint8) (*Elementary, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "grid size %dx%d", w, h)
	}
	return &Elementary{
		w:    w,
		h:    h,
		rule: rule,
		cur:  core.NewByteGrid(w, h),
		nxt:  core.NewByteGrid(w, h),
	}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the current generation in row-major order.
func (e *Elementary) Cells() []uint8 { return e.cur.Cells() }

// Rule returns the Wolfram rule number.
func (e *Elementary) Rule() uint8 { return e.rule }

// SetRule replaces the rule used by subsequent steps.
func (e *Elementary) SetRule(rule uint8) { e.rule = rule }

// Generation returns the number of steps since the last reset.
func (e *Elementary) Generation() int { return e.gen }

// Population returns the number of live cells.
func (e *Elementary) Population() int { return e.cur.Count() }

// Seed returns the seed of the last reset.
func (e *Elementary) Seed() int64 { return e.seed }

// Reset reinitializes the grid. A centre-seeded automaton puts one live cell
// in the middle of every row, otherwise each cell is a coin flip from seed.
func (e *Elementary) Reset(seed int64) {
	e.seed = seed
	e.gen = 0
	if !e.center {
		core.NewRNG(seed).FillBinary(e.cur.Cells())
		return
	}
	e.cur.Clear()
	for y := 0; y < e.h; y++ {
		e.cur.Set(e.w/2, y, 1)
	}
}

// Randomize fills the grid with coin flips from seed and drops centre
// seeding.
func (e *Elementary) Randomize(seed int64) {
	e.center = false
	e.Reset(seed)
}

// Clear kills every cell.
func (e *Elementary) Clear() {
	e.cur.Clear()
	e.gen = 0
}

// SetCell sets the cell at (x, y). It reports false outside the grid.
func (e *Elementary) SetCell(x, y int, alive bool) bool {
	if !e.cur.InBounds(x, y) {
		return false
	}
	var v uint8
	if alive {
		v = 1
	}
	e.cur.Cells()[e.cur.Index(x, y)] = v
	return true
}

// ToggleCell flips the cell at (x, y). It reports false outside the grid.
func (e *Elementary) ToggleCell(x, y int) bool {
	if !e.cur.InBounds(x, y) {
		return false
	}
	return e.SetCell(x, y, e.cur.At(x, y) == 0)
}

// Step applies the rule to every row and swaps the buffers.
func (e *Elementary) Step() {
	w := e.w
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	for y := 0; y < e.h; y++ {
		row := cur[y*w : (y+1)*w]
		out := nxt[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			left := row[(x-1+w)%w]
			right := row[(x+1)%w]
			idx := left<<2 | row[x]<<1 | right
			out[x] = (e.rule >> idx) & 1
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		e, err := c.Build()
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
