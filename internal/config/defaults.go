package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:    4,
			WinTile: 2048,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		History: HistoryConfig{
			Capacity: 3,
		},
		Modes: ModesConfig{
			TimeLimitSeconds: 180,
			TargetScore:      10000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultT2048YAML
}
