package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"torus-life/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim         string        `json:"sim"`
	N           int           `json:"n"`
	Cell        int           `json:"cell"`
	Interval    time.Duration `json:"interval"`
	Seed        int64         `json:"seed"`
	Density     float64       `json:"density"`
	Rule        string        `json:"rule"`
	Pattern     string        `json:"pattern"`
	HUDWidth    int           `json:"hud_width"`
	AutoRestart bool          `json:"auto_restart"`

	// ConfigPath names an optional JSON file layered under the flags.
	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		N:        50,
		Cell:     20,
		Interval: core.DefaultInterval,
		Seed:     42,
		Density:  0.5,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, elementary)")
	fs.IntVar(&c.N, "n", c.N, "grid size (cells per side)")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixels per cell")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a seeded life cell starts alive")
	fs.StringVar(&c.Rule, "rule", c.Rule, "B/S rule for life or 0-255 for elementary (empty uses the sim default)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a built-in pattern instead of a random fill (elementary: center)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels (0 hides it)")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed when the grid dies out or settles into a short cycle")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON config file; flags given on the command line take precedence")
}

// Parse parses args into the config. When -config names a file, the file is
// loaded first and the flags are applied again on top of it.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return c.Validate()
	}
	loaded, err := LoadConfig(c.ConfigPath, *c)
	if err != nil {
		return err
	}
	*c = loaded
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}

// LoadConfig overlays the JSON file at filename on base.
func LoadConfig(filename string, base Config) (Config, error) {
	config := base
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	config.ConfigPath = base.ConfigPath
	return config, nil
}

// UnmarshalJSON reads "interval" as a duration string such as "100ms". A bare
// number is taken as nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Interval *jsonDuration `json:"interval"`
	}{plain: (*plain)(c), Interval: (*jsonDuration)(&c.Interval)}
	return json.Unmarshal(data, &aux)
}

type jsonDuration time.Duration

func (d *jsonDuration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var ns int64
		if err := json.Unmarshal(data, &ns); err != nil {
			return errors.Errorf("interval %s is neither a duration string nor a number", data)
		}
		*d = jsonDuration(ns)
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "parse interval %q", s)
	}
	*d = jsonDuration(parsed)
	return nil
}

// Validate checks the presentation settings. Simulation settings are
// validated by the sim factory.
func (c *Config) Validate() error {
	if c.Cell <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.Cell)
	}
	if c.HUDWidth < 0 {
		return errors.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	if c.Interval < core.MinInterval {
		return errors.Errorf("interval must be at least %v, got %v", core.MinInterval, c.Interval)
	}
	return nil
}

// SimOptions converts the config into the key/value map sim factories read.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"n":       strconv.Itoa(c.N),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"rule":    c.Rule,
		"pattern": c.Pattern,
	}
}
