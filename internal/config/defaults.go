package config

import (
	_ "embed"
)

//go:embed defaults/valentine.yaml
var defaultYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as the
// last-resort fallback if the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Gameplay: GameplayConfig{
			WinTarget:  512,
			Spawn4Prob: 0.10,
		},
		Valentine: ValentineConfig{
			HeartIntervalMS: 300,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
