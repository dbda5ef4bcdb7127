package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/sims/elementary"
	"torus-life/internal/sims/life"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	return cfg, cfg.Parse(fs, args)
}

func TestParseFlags(t *testing.T) {
	cfg, err := parse(t, "-n", "30", "-interval", "250ms", "-rule", "B36/S23", "-auto-restart")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.N != 30 || cfg.Interval != 250*time.Millisecond || cfg.Rule != "B36/S23" || !cfg.AutoRestart {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Cell != 20 || cfg.Seed != 42 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseConfigFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"n": 80, "cell": 8, "density": 0.3, "pattern": "glider", "interval": 50000000}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := parse(t, "-config", path, "-cell", "4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.N != 80 || cfg.Density != 0.3 || cfg.Pattern != "glider" || cfg.Interval != 50*time.Millisecond {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Cell != 4 {
		t.Fatalf("flag should win over file, cell=%d", cfg.Cell)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("ConfigPath=%q, expected %q", cfg.ConfigPath, path)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json"), *NewConfig()); err == nil || !strings.Contains(err.Error(), "[LoadConfig]") {
		t.Fatalf("missing file err=%v", err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(bad, *NewConfig()); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("bad json err=%v", err)
	}
}

func TestValidate(t *testing.T) {
	for _, args := range [][]string{
		{"-cell", "0"},
		{"-hud", "-1"},
		{"-interval", "1ms"},
	} {
		if _, err := parse(t, args...); err == nil {
			t.Fatalf("Parse(%v) expected validation error", args)
		}
	}
}

func TestSimOptionsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.N = 12
	cfg.Seed = -9
	cfg.Density = 0.125
	cfg.Pattern = "toad"
	c, err := life.FromMap(cfg.SimOptions())
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if c.Size != 12 || c.Seed != -9 || c.Density != 0.125 || c.Pattern != "toad" || c.Rule != life.Conway {
		t.Fatalf("round trip lost values: %+v", c)
	}
}

func TestConfigFileIntervalString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.json")
	if err := os.WriteFile(path, []byte(`{"interval": "250ms", "seed": 9}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path, *NewConfig())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Interval != 250*time.Millisecond || cfg.Seed != 9 || cfg.N != 50 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"interval": "soon"}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(bad, *NewConfig()); err == nil {
		t.Fatal("malformed interval should be rejected")
	}
}

func TestSimOptionsSelectElementary(t *testing.T) {
	cfg, err := parse(t, "-sim", "elementary", "-n", "20")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sim, err := core.New(cfg.Sim, cfg.SimOptions())
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	e, ok := sim.(*elementary.Elementary)
	if !ok {
		t.Fatalf("got %T, expected *elementary.Elementary", sim)
	}
	if e.Rule() != elementary.DefaultRule || e.Size() != (core.Size{W: 20, H: 20}) {
		t.Fatalf("rule=%d size=%v", e.Rule(), e.Size())
	}
}
