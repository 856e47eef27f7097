// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for 2048.
package config

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	History HistoryConfig `yaml:"history"`
	Modes   ModesConfig   `yaml:"modes"`
}

// BoardConfig defines the board shape and the soft-win tile.
type BoardConfig struct {
	Size    int `yaml:"size" validate:"min=2,max=8"`
	WinTile int `yaml:"win_tile" validate:"min=8,pow2"`
}

// SpawnConfig defines tile spawn odds.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability" validate:"min=0,max=1"`
}

// HistoryConfig defines the undo depth.
type HistoryConfig struct {
	Capacity int `yaml:"capacity" validate:"min=1,max=100"`
}

// ModesConfig defines the parameters of the timed and target modes.
type ModesConfig struct {
	TimeLimitSeconds int `yaml:"time_limit_seconds" validate:"min=1"`
	TargetScore      int `yaml:"target_score" validate:"min=1"`
}

// TimeLimit returns the time attack limit as a duration.
func (m ModesConfig) TimeLimit() time.Duration {
	return time.Duration(m.TimeLimitSeconds) * time.Second
}

// Apply copies the board rules into a runtime config.
func (c T2048Config) Apply(rt *core.RuntimeConfig) {
	rt.BoardSize = c.Board.Size
	rt.WinTile = c.Board.WinTile
	rt.Spawn4 = c.Spawn.FourProbability
	rt.HistoryCapacity = c.History.Capacity
	rt.TimeLimit = c.Modes.TimeLimit()
	rt.TargetScore = c.Modes.TargetScore
}
