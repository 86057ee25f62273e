package config

import (
	"embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

//go:embed defaults/layouts/*.yaml
var builtinLayouts embed.FS

// DefaultBattleshipConfig returns the default battleship configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		Computer: ComputerConfig{
			ThinkTicks: 15,
			Adaptive:   true,
		},
		Setup: SetupConfig{
			AutoPlacePlayer: false,
		},
		Display: DisplayConfig{
			RevealEnemyOnEnd: true,
			ShowComputerMode: false,
		},
	}
}
