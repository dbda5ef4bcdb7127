package life

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	// DefaultSize is the grid edge length used when none is configured.
	DefaultSize = 50
	// DefaultDensity is the probability that a randomly seeded cell is alive.
	DefaultDensity = 0.5
	// DefaultSeed seeds the initial random fill.
	DefaultSeed int64 = 42
)

// Config holds parameters for the Life simulation.
type Config struct {
	Size    int
	Seed    int64
	Density float64
	Rule    Rule
	// Pattern names a built-in pattern to start from instead of a random fill.
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Seed: DefaultSeed, Density: DefaultDensity, Rule: Conway}
}

// FromMap populates a Config from a string map. Missing keys keep their
// defaults; malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["n"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "parse n %q", v)
		}
		c.Size = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "parse seed %q", v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(err, "parse density %q", v)
		}
		if parsed < 0 || parsed > 1 {
			return c, errors.Errorf("density %v outside [0, 1]", parsed)
		}
		c.Density = parsed
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		r, err := ParseRule(v)
		if err != nil {
			return c, err
		}
		c.Rule = r
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c, nil
}

// Build constructs the simulation described by the config.
func (c Config) Build() (*Life, error) {
	var (
		l   *Life
		err error
	)
	if c.Pattern != "" {
		p, perr := NamedPattern(c.Pattern)
		if perr != nil {
			return nil, perr
		}
		l, err = NewFromPattern(c.Size, p.Centered(c.Size))
		if l != nil {
			l.density = c.Density
			l.seed = c.Seed
		}
	} else {
		l, err = NewRandom(c.Size, c.Seed, c.Density)
	}
	if err != nil {
		return nil, err
	}
	l.SetRule(c.Rule)
	return l, nil
}
