package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".battleship"

// LoadBattleship loads battleship configuration.
// Search order: customPath -> ~/.battleship/configs/battleship.yaml ->
// ./configs/battleship.yaml -> embedded default -> hardcoded default.
//
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed.
func LoadBattleship(customPath string) (BattleshipConfig, error) {
	if customPath != "" {
		cfg := DefaultBattleshipConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("battleship.yaml"),
		filepath.Join("configs", "battleship.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	cfg := DefaultBattleshipConfig()
	if err := yaml.Unmarshal(defaultBattleshipYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBattleshipConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads a config file layered over the defaults, reporting false when
// the file is missing or unusable.
func tryLoad(path string) (BattleshipConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BattleshipConfig{}, false
	}
	cfg := DefaultBattleshipConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BattleshipConfig{}, false
	}
	if cfg.Validate() != nil {
		return BattleshipConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}
