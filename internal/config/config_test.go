package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBlaster(defaultBlasterYAML)
	if err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}

	def := DefaultBlasterConfig()
	if cfg.Round != def.Round {
		t.Errorf("Round = %+v, expected %+v", cfg.Round, def.Round)
	}
	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if cfg.Missile != def.Missile {
		t.Errorf("Missile = %+v, expected %+v", cfg.Missile, def.Missile)
	}
	if cfg.Saucer != def.Saucer {
		t.Errorf("Saucer = %+v, expected %+v", cfg.Saucer, def.Saucer)
	}
	if len(cfg.Levels) != len(def.Levels) {
		t.Fatalf("expected %d levels, got %d", len(def.Levels), len(cfg.Levels))
	}
	for i := range def.Levels {
		if cfg.Levels[i] != def.Levels[i] {
			t.Errorf("Levels[%d] = %+v, expected %+v", i, cfg.Levels[i], def.Levels[i])
		}
	}
}

func TestLevelConstants(t *testing.T) {
	cfg := DefaultBlasterConfig()

	tests := []struct {
		level    Difficulty
		interval time.Duration
		speed    float64
	}{
		{DifficultyNovice, 1800 * time.Millisecond, 0.03},
		{DifficultyMini, 1200 * time.Millisecond, 0.045},
		{DifficultyMaster, 800 * time.Millisecond, 0.065},
	}

	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			l := cfg.Level(tc.level)
			if l.SpawnInterval != tc.interval {
				t.Errorf("SpawnInterval = %v, expected %v", l.SpawnInterval, tc.interval)
			}
			if l.FallSpeed != tc.speed {
				t.Errorf("FallSpeed = %v, expected %v", l.FallSpeed, tc.speed)
			}
		})
	}

	// Out-of-range levels fall back to Novice
	if got := cfg.Level(Difficulty(9)); got.Name != "Novice" {
		t.Errorf("Level(9) should fall back to Novice, got %q", got.Name)
	}
}

func TestLoadBlasterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blaster.yaml")

	// Partial file: only the round duration changes
	if err := os.WriteFile(path, []byte("round:\n  duration: 30s\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadBlaster(path)
	if err != nil {
		t.Fatalf("LoadBlaster() failed: %v", err)
	}
	if cfg.Round.Duration != 30*time.Second {
		t.Errorf("Duration = %v, expected 30s", cfg.Round.Duration)
	}
	if cfg.Round.MaxScore != 99 {
		t.Errorf("MaxScore should keep its default, got %d", cfg.Round.MaxScore)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("Levels should keep their defaults, got %d entries", len(cfg.Levels))
	}
}

func TestLoadBlasterErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlaster(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBlaster() with a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("round: [not, a, map]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadBlaster(bad); err == nil {
		t.Error("LoadBlaster() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("missile:\n  step: 0\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadBlaster(invalid); err == nil {
		t.Error("LoadBlaster() should reject a zero missile step")
	}

	// The field is always three lanes wide; a lanes key is an unknown field
	lanes := filepath.Join(dir, "lanes.yaml")
	if err := os.WriteFile(lanes, []byte("field:\n  lanes: 2\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadBlaster(lanes); err == nil {
		t.Error("LoadBlaster() should reject a field.lanes override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlasterConfig)
		ok     bool
	}{
		{"defaults", func(*BlasterConfig) {}, true},
		{"zero duration", func(c *BlasterConfig) { c.Round.Duration = 0 }, false},
		{"spawn above top", func(c *BlasterConfig) { c.Field.SpawnAltitude = 8 }, false},
		{"launch above top", func(c *BlasterConfig) { c.Missile.LaunchAltitude = 7 }, false},
		{"no saucers", func(c *BlasterConfig) { c.Saucer.MaxActive = 0 }, false},
		{"drift over one", func(c *BlasterConfig) { c.Saucer.DriftChance = 1.5 }, false},
		{"two levels", func(c *BlasterConfig) { c.Levels = c.Levels[:2] }, false},
		{"zero fall speed", func(c *BlasterConfig) { c.Levels[1].FallSpeed = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlasterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		ok       bool
	}{
		{"", DifficultyNovice, true},
		{"1", DifficultyNovice, true},
		{"2", DifficultyMini, true},
		{"3", DifficultyMaster, true},
		{"novice", DifficultyNovice, true},
		{"Mini", DifficultyMini, true},
		{" MASTER ", DifficultyMaster, true},
		{"0", 0, false},
		{"4", 0, false},
		{"hard", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDifficulty(tc.input)
			if tc.ok {
				if err != nil {
					t.Fatalf("ParseDifficulty(%q) failed: %v", tc.input, err)
				}
				if d != tc.expected {
					t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.input, d, tc.expected)
				}
				return
			}
			if !errors.Is(err, ErrUnknownDifficulty) {
				t.Errorf("ParseDifficulty(%q) error = %v, expected ErrUnknownDifficulty", tc.input, err)
			}
		})
	}
}
