package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg.Gameplay.WinTarget != 512 {
		t.Errorf("win_target = %d, want 512", cfg.Gameplay.WinTarget)
	}
	if cfg.Gameplay.Spawn4Prob != 0.10 {
		t.Errorf("spawn4_probability = %v, want 0.10", cfg.Gameplay.Spawn4Prob)
	}
	if cfg.Valentine.HeartIntervalMS != 300 {
		t.Errorf("heart_interval_ms = %d, want 300", cfg.Valentine.HeartIntervalMS)
	}
}

func TestEmbeddedMatchesHardcodedDefault(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultGameConfig() {
		t.Errorf("embedded default %+v differs from hardcoded default %+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("gameplay:\n  win_target: 2048\n  spawn4_probability: 0.25\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Gameplay.WinTarget != 2048 {
		t.Errorf("win_target = %d, want 2048", cfg.Gameplay.WinTarget)
	}
	if cfg.Gameplay.Spawn4Prob != 0.25 {
		t.Errorf("spawn4_probability = %v, want 0.25", cfg.Gameplay.Spawn4Prob)
	}
	// Missing section filled from defaults.
	if cfg.Valentine.HeartIntervalMS != 300 {
		t.Errorf("heart_interval_ms = %d, want default 300", cfg.Valentine.HeartIntervalMS)
	}
}

func TestLoadCustomPathMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestNormalizeRejectsInvalidProbability(t *testing.T) {
	cfg := GameConfig{Gameplay: GameplayConfig{WinTarget: 512, Spawn4Prob: 1.5}}
	cfg.Normalize()

	if cfg.Gameplay.Spawn4Prob != 0.10 {
		t.Errorf("spawn4_probability = %v, want default 0.10 for out-of-range input", cfg.Gameplay.Spawn4Prob)
	}
}
