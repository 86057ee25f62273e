package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a preset name. The empty string means "keep the
// loaded config" and returns an empty preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBattleshipPreset adjusts the computer opponent for a difficulty preset.
// Easy fires at random and slowly; hard answers almost immediately.
func ApplyBattleshipPreset(cfg *BattleshipConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Computer.Adaptive = false
		cfg.Computer.ThinkTicks = 30
	case DifficultyNormal:
		cfg.Computer.Adaptive = true
		cfg.Computer.ThinkTicks = 15
	case DifficultyHard:
		cfg.Computer.Adaptive = true
		cfg.Computer.ThinkTicks = 4
	}
}
