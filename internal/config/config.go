// Package config provides YAML-based configuration for the battleship game:
// computer behaviour, setup options, display options, difficulty presets and
// fleet layouts.
package config

import (
	"errors"
	"fmt"
)

// BattleshipConfig contains all configuration for a battleship match.
type BattleshipConfig struct {
	Computer ComputerConfig `yaml:"computer"`
	Setup    SetupConfig    `yaml:"setup"`
	Display  DisplayConfig  `yaml:"display"`
}

// ComputerConfig controls the computer opponent.
type ComputerConfig struct {
	ThinkTicks int  `yaml:"think_ticks"` // Ticks to wait before each computer attack
	Adaptive   bool `yaml:"adaptive"`    // Hunt/target/lock after hits; random only when false
}

// SetupConfig controls fleet placement before the battle.
type SetupConfig struct {
	AutoPlacePlayer bool   `yaml:"auto_place_player"` // Skip manual placement for the human
	Layout          string `yaml:"layout"`            // Layout file or built-in name for the human fleet
	EnemyLayout     string `yaml:"enemy_layout"`      // Same for the computer; random when empty
}

// DisplayConfig controls rendering options.
type DisplayConfig struct {
	RevealEnemyOnEnd bool `yaml:"reveal_enemy_on_end"` // Show surviving enemy ships after the game
	ShowComputerMode bool `yaml:"show_computer_mode"`  // Show the computer's targeting mode in the status line
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid battleship config")

// Validate checks value ranges.
func (c BattleshipConfig) Validate() error {
	if c.Computer.ThinkTicks < 0 {
		return fmt.Errorf("%w: computer.think_ticks must be >= 0, got %d", ErrInvalidConfig, c.Computer.ThinkTicks)
	}
	if c.Computer.ThinkTicks > maxThinkTicks {
		return fmt.Errorf("%w: computer.think_ticks must be <= %d, got %d", ErrInvalidConfig, maxThinkTicks, c.Computer.ThinkTicks)
	}
	return nil
}

// maxThinkTicks keeps the computer from stalling the match.
const maxThinkTicks = 600
