package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n got  %+v\n want %+v", cfg, Default())
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
	if got := Default().Tick().Milliseconds(); got != 100 {
		t.Errorf("Tick() = %dms, expected 100ms", got)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("speed:\n  max: 8\npowerups:\n  shield_cap: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Speed.Max != 8 {
		t.Errorf("Speed.Max = %d, expected 8", cfg.Speed.Max)
	}
	if cfg.PowerUps.ShieldCap != 3 {
		t.Errorf("ShieldCap = %d, expected 3", cfg.PowerUps.ShieldCap)
	}
	// Untouched keys keep their defaults
	if cfg.Field.LaneWidth != 100 {
		t.Errorf("LaneWidth = %v, expected default 100", cfg.Field.LaneWidth)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero tick", func(c *Config) { c.Field.TickMillis = 0 }, "tick_ms"},
		{"bad low chance", func(c *Config) { c.Obstacles.LowChance = 1.5 }, "low_chance"},
		{"inverted delay", func(c *Config) { c.PowerUps.MaxDelayMillis = 100 }, "delay range"},
		{"negative cap", func(c *Config) { c.PowerUps.ShieldCap = -1 }, "shield_cap"},
		{"initial outside", func(c *Config) { c.Speed.Initial = 9 }, "speed.initial"},
		{"zero lane width", func(c *Config) { c.Field.LaneWidth = 0 }, "lane_width"},
		{"zero base step", func(c *Config) { c.Field.BaseStep = 0 }, "base_step"},
		{"negative slow factor", func(c *Config) { c.Field.SlowFactor = -0.5 }, "slow_factor"},
		{"zero powerup step", func(c *Config) { c.PowerUps.StepFactor = 0 }, "step_factor"},
		{"zero duration", func(c *Config) { c.PowerUps.DurationMillis = 0 }, "duration_ms"},
		{"negative shield window", func(c *Config) { c.PowerUps.ShieldWindowMillis = -1 }, "shield_window_ms"},
		{"zero multiplier", func(c *Config) { c.PowerUps.ScoreMultiplier = 0 }, "score_multiplier"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsEveryValue(t *testing.T) {
	cfg := Default()
	cfg.Field.TickMillis = 0
	cfg.Field.BaseStep = 0
	cfg.PowerUps.ScoreMultiplier = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"tick_ms", "base_step", "score_multiplier"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  jump_ms: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.JumpMillis != 900 {
		t.Errorf("JumpMillis = %d, expected 900", cfg.Player.JumpMillis)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  min: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of an invalid custom file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "lane_width: 100") {
		t.Errorf("marshalled YAML should use yaml tags, got:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != Default() {
		t.Error("round trip should preserve the config")
	}
}
