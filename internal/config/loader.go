package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const configFile = "blockpuzzle.yaml"

// Env holds settings that may come from the environment. The CLI uses them
// as flag defaults, so explicit flags still win.
type Env struct {
	ConfigPath string `env:"BLOCKPUZZLE_CONFIG"`
	DBPath     string `env:"BLOCKPUZZLE_DB" envDefault:"~/.blockpuzzle/blockpuzzle.db"`
	Seed       int64  `env:"BLOCKPUZZLE_SEED" envDefault:"0"`
	LogLevel   string `env:"BLOCKPUZZLE_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"BLOCKPUZZLE_LOG_FILE" envDefault:"~/.blockpuzzle/blockpuzzle.log"`
}

// LoadEnv parses the BLOCKPUZZLE_* environment variables.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return e, nil
}

// Load loads the puzzle configuration.
// Search order: customPath -> ~/.blockpuzzle/configs/blockpuzzle.yaml ->
// ./configs/blockpuzzle.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (BlockPuzzleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockPuzzleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BlockPuzzleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (BlockPuzzleConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockPuzzleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BlockPuzzleConfig{}, err
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockpuzzle", "configs", filename)
}
