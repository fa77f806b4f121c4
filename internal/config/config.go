// Package config provides YAML-based configuration loading for the game:
// gameplay parameters and the valentine animation interval.
package config

// GameConfig contains all tunable parameters.
type GameConfig struct {
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Valentine ValentineConfig `yaml:"valentine"`
}

// GameplayConfig defines the engine parameters.
type GameplayConfig struct {
	WinTarget  int     `yaml:"win_target"`         // tile that triggers the valentine screen
	Spawn4Prob float64 `yaml:"spawn4_probability"` // chance a spawned tile is a 4
}

// ValentineConfig defines presentation parameters for the win screen.
type ValentineConfig struct {
	HeartIntervalMS int `yaml:"heart_interval_ms"` // delay between heart animation frames
}

// Normalize fills zero-valued fields with defaults so a partial YAML file
// still yields a playable configuration.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()
	if c.Gameplay.WinTarget <= 0 {
		c.Gameplay.WinTarget = def.Gameplay.WinTarget
	}
	if c.Gameplay.Spawn4Prob <= 0 || c.Gameplay.Spawn4Prob > 1 {
		c.Gameplay.Spawn4Prob = def.Gameplay.Spawn4Prob
	}
	if c.Valentine.HeartIntervalMS <= 0 {
		c.Valentine.HeartIntervalMS = def.Valentine.HeartIntervalMS
	}
}
