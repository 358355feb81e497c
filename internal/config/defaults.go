package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

// DefaultBlasterConfig returns the default UFO Master Blaster configuration.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Round: RoundConfig{
			Duration: 80 * time.Second,
			MaxScore: 99,
			WinDelay: 100 * time.Millisecond,
		},
		Field: FieldConfig{
			TopAltitude:   7.0,
			SpawnAltitude: 6.0,
			HitCeiling:    6.5,
			HitWindow:     0.5,
		},
		Missile: MissileConfig{
			Step:           0.12,
			LaunchAltitude: -0.5,
		},
		Saucer: SaucerConfig{
			MaxActive:    4,
			DriftChance:  0.015,
			ExplosionTTL: 200 * time.Millisecond,
		},
		Levels: []LevelConfig{
			{Name: "Novice", SpawnInterval: 1800 * time.Millisecond, FallSpeed: 0.03},
			{Name: "Mini", SpawnInterval: 1200 * time.Millisecond, FallSpeed: 0.045},
			{Name: "Master", SpawnInterval: 800 * time.Millisecond, FallSpeed: 0.065},
		},
	}
}
