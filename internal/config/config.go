// Package config provides YAML-based game configuration loading and
// difficulty presets for the blaster.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlasterConfig contains all configuration for UFO Master Blaster.
type BlasterConfig struct {
	Round   RoundConfig   `yaml:"round"`
	Field   FieldConfig   `yaml:"field"`
	Missile MissileConfig `yaml:"missile"`
	Saucer  SaucerConfig  `yaml:"saucer"`
	Levels  []LevelConfig `yaml:"levels"` // Indexed by Difficulty-1
}

// RoundConfig defines the countdown and win condition.
type RoundConfig struct {
	Duration time.Duration `yaml:"duration"`  // Countdown length; reaching zero loses the round
	MaxScore int           `yaml:"max_score"` // Score cap; reaching it wins the round
	WinDelay time.Duration `yaml:"win_delay"` // Pause between the winning hit and the won phase
}

// FieldConfig defines the playfield in altitude units. The lane count is
// fixed at core.LaneCount and is not configurable.
type FieldConfig struct {
	TopAltitude   float64 `yaml:"top_altitude"`   // Missiles above this are lost
	SpawnAltitude float64 `yaml:"spawn_altitude"` // Where new saucers appear
	HitCeiling    float64 `yaml:"hit_ceiling"`    // Saucers above this cannot be hit
	HitWindow     float64 `yaml:"hit_window"`     // Half-height of the hit box
}

// MissileConfig defines missile flight.
type MissileConfig struct {
	Step           float64 `yaml:"step"`            // Altitude gained per tick
	LaunchAltitude float64 `yaml:"launch_altitude"` // Starting altitude, below the field
}

// SaucerConfig defines saucer behavior shared by all levels.
type SaucerConfig struct {
	MaxActive    int           `yaml:"max_active"`    // Spawn gating cap
	DriftChance  float64       `yaml:"drift_chance"`  // Per-tick probability of a lane change
	ExplosionTTL time.Duration `yaml:"explosion_ttl"` // Lifetime of the hit marker
}

// LevelConfig defines the constants fixed by a difficulty level.
type LevelConfig struct {
	Name          string        `yaml:"name"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Minimum time between spawns
	FallSpeed     float64       `yaml:"fall_speed"`     // Altitude lost per tick
}

// Validate checks that the config describes a playable field.
func (c BlasterConfig) Validate() error {
	var errs []error

	if c.Round.Duration <= 0 {
		errs = append(errs, errors.New("round.duration must be positive"))
	}
	if c.Round.MaxScore <= 0 {
		errs = append(errs, errors.New("round.max_score must be positive"))
	}
	if c.Round.WinDelay < 0 {
		errs = append(errs, errors.New("round.win_delay must not be negative"))
	}
	if c.Field.SpawnAltitude <= 0 || c.Field.SpawnAltitude > c.Field.TopAltitude {
		errs = append(errs, fmt.Errorf("field.spawn_altitude %v must be in (0, %v]", c.Field.SpawnAltitude, c.Field.TopAltitude))
	}
	if c.Field.HitWindow <= 0 {
		errs = append(errs, errors.New("field.hit_window must be positive"))
	}
	if c.Missile.Step <= 0 {
		errs = append(errs, errors.New("missile.step must be positive"))
	}
	if c.Missile.LaunchAltitude >= c.Field.TopAltitude {
		errs = append(errs, errors.New("missile.launch_altitude must be below field.top_altitude"))
	}
	if c.Saucer.MaxActive < 1 {
		errs = append(errs, errors.New("saucer.max_active must be at least 1"))
	}
	if c.Saucer.DriftChance < 0 || c.Saucer.DriftChance > 1 {
		errs = append(errs, errors.New("saucer.drift_chance must be in [0, 1]"))
	}
	if len(c.Levels) != int(DifficultyCount) {
		errs = append(errs, fmt.Errorf("levels: expected %d entries, got %d", DifficultyCount, len(c.Levels)))
	}
	for i, l := range c.Levels {
		if l.SpawnInterval <= 0 {
			errs = append(errs, fmt.Errorf("levels[%d].spawn_interval must be positive", i))
		}
		if l.FallSpeed <= 0 {
			errs = append(errs, fmt.Errorf("levels[%d].fall_speed must be positive", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid blaster config: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the constants for a difficulty level.
// Unknown levels fall back to the first entry.
func (c BlasterConfig) Level(d Difficulty) LevelConfig {
	idx := int(d) - 1
	if idx < 0 || idx >= len(c.Levels) {
		idx = 0
	}
	if len(c.Levels) == 0 {
		return DefaultBlasterConfig().Levels[0]
	}
	return c.Levels[idx]
}
