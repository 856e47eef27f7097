// Package t2048 implements the 2048 sliding-tile puzzle with classic, time attack and target modes.
package t2048

import (
	"fmt"
	"time"
)

// ModeKind selects the rule set of a session.
type ModeKind int

const (
	ModeClassic ModeKind = iota
	ModeTimeAttack
	ModeTarget
)

// Defaults for the timed and target modes.
const (
	DefaultTimeLimit   = 180 * time.Second
	DefaultTargetScore = 10000
	DefaultWinTile     = 2048
)

// Registry IDs, one per mode so scores are kept apart.
const (
	IDClassic    = "2048"
	IDTimeAttack = "2048_time"
	IDTarget     = "2048_target"
)

// Mode describes the rules for a session.
type Mode struct {
	Kind      ModeKind
	TimeLimit time.Duration // TimeAttack only
	Target    int           // Target only
}

// Classic is open-ended play until the board locks.
func Classic() Mode {
	return Mode{Kind: ModeClassic}
}

// TimeAttack ends the game when d runs out. Non-positive d uses the default.
func TimeAttack(d time.Duration) Mode {
	if d <= 0 {
		d = DefaultTimeLimit
	}
	return Mode{Kind: ModeTimeAttack, TimeLimit: d}
}

// TargetScore wins the game once the score reaches n. Non-positive n uses the default.
func TargetScore(n int) Mode {
	if n <= 0 {
		n = DefaultTargetScore
	}
	return Mode{Kind: ModeTarget, Target: n}
}

// ID returns the registry ID for the mode.
func (m Mode) ID() string {
	switch m.Kind {
	case ModeTimeAttack:
		return IDTimeAttack
	case ModeTarget:
		return IDTarget
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m.Kind {
	case ModeTimeAttack:
		return "2048 (Time Attack)"
	case ModeTarget:
		return "2048 (Target)"
	default:
		return "2048"
	}
}

// Describe returns a short rules line for menus.
func (m Mode) Describe() string {
	switch m.Kind {
	case ModeTimeAttack:
		return fmt.Sprintf("Score as much as you can in %s", formatClock(m.TimeLimit))
	case ModeTarget:
		return fmt.Sprintf("Reach %d points", m.Target)
	default:
		return "Merge tiles until the board locks"
	}
}

// String returns the short mode name.
func (m Mode) String() string {
	switch m.Kind {
	case ModeTimeAttack:
		return "time"
	case ModeTarget:
		return "target"
	default:
		return "classic"
	}
}

// ParseMode maps a mode name or registry ID to a mode built from the given parameters.
func ParseMode(s string, timeLimit time.Duration, target int) (Mode, bool) {
	switch s {
	case "classic", "", IDClassic:
		return Classic(), true
	case "time", "timed", "time-attack", IDTimeAttack:
		return TimeAttack(timeLimit), true
	case "target", IDTarget:
		return TargetScore(target), true
	default:
		return Mode{}, false
	}
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
