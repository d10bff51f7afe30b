/*
Package config manages the TOML config for wordpick.

The file is created with defaults when missing. A file that fails to decode is
recovered section by section, keeping every value that still parses; anything
else falls back to the built-in defaults. Environment variables are applied
last and win over the file:

	WORDPICK_DATA_DIR, WORDPICK_BASE_URL, WORDPICK_MAX_WORDS,
	WORDPICK_FETCH_TIMEOUT, WORDPICK_FOLD_PATTERN, WORDPICK_EXCLUDE_SELF,
	WORDPICK_LANG, WORDPICK_MODE
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Search SearchConfig `toml:"search"`
	CLI    CliConfig    `toml:"cli"`
}

// DictConfig tells where word lists come from.
type DictConfig struct {
	// DataDir is a directory holding words_en.txt and words_ja.txt.
	DataDir string `toml:"data_dir" env:"WORDPICK_DATA_DIR"`
	// BaseURL, when set, fetches the word lists over HTTP instead.
	BaseURL string `toml:"base_url" env:"WORDPICK_BASE_URL"`
	// MaxWords caps the loaded words, 0 for all.
	MaxWords int `toml:"max_words" env:"WORDPICK_MAX_WORDS"`
	// FetchTimeout is the HTTP timeout in seconds.
	FetchTimeout int `toml:"fetch_timeout" env:"WORDPICK_FETCH_TIMEOUT"`
}

// SearchConfig holds matcher options.
type SearchConfig struct {
	FoldPattern bool `toml:"fold_pattern" env:"WORDPICK_FOLD_PATTERN"`
	ExcludeSelf bool `toml:"exclude_self" env:"WORDPICK_EXCLUDE_SELF"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLang string `toml:"default_lang" env:"WORDPICK_LANG"`
	DefaultMode string `toml:"default_mode" env:"WORDPICK_MODE"`
	ShowTimings bool   `toml:"show_timings"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			DataDir:      "data/",
			BaseURL:      "",
			MaxWords:     0,
			FetchTimeout: 30,
		},
		Search: SearchConfig{
			FoldPattern: true,
			ExcludeSelf: true,
		},
		CLI: CliConfig{
			DefaultLang: string(dictionary.English),
			DefaultMode: string(search.ModePositions),
			ShowTimings: false,
		},
	}
}

// SearchOptions maps the search section onto matcher options.
func (c *Config) SearchOptions() search.Options {
	return search.Options{
		FoldPattern: c.Search.FoldPattern,
		ExcludeSelf: c.Search.ExcludeSelf,
	}
}

// Timeout returns the HTTP fetch timeout.
func (c *Config) Timeout() time.Duration {
	if c.Dict.FetchTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Dict.FetchTimeout) * time.Second
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. defaultPath, created when missing
// 3. Builtin defaults
// Environment overrides are applied to whichever won. The returned path is
// the file actually used, empty for builtin defaults.
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string, error) {
	config, path := loadFromFiles(customPath, defaultPath)
	if err := ApplyEnv(config); err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func loadFromFiles(customPath, defaultPath string) (*Config, string) {
	if customPath != "" {
		if _, statErr := os.Stat(customPath); statErr == nil {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customPath, statErr)
		}
	}

	if defaultPath == "" {
		log.Debug("No default config path, using built-in defaults")
		return DefaultConfig(), ""
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// ApplyEnv overrides config values from WORDPICK_* environment variables.
func ApplyEnv(config *Config) error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, recovering what it can from a file that
// does not decode cleanly.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse rebuilds a config value by value from a generic TOML map.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(raw, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "data_dir"); ok {
		dict.DataDir = val
	}
	if val, ok := utils.ExtractString(data, "base_url"); ok {
		dict.BaseURL = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
	if val, ok := utils.ExtractInt64(data, "fetch_timeout"); ok {
		dict.FetchTimeout = val
	}
}

// extractSearchConfig extracts matcher options from a map
func extractSearchConfig(data map[string]any, s *SearchConfig) {
	if val, ok := utils.ExtractBool(data, "fold_pattern"); ok {
		s.FoldPattern = val
	}
	if val, ok := utils.ExtractBool(data, "exclude_self"); ok {
		s.ExcludeSelf = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "default_lang"); ok {
		cli.DefaultLang = val
	}
	if val, ok := utils.ExtractString(data, "default_mode"); ok {
		cli.DefaultMode = val
	}
	if val, ok := utils.ExtractBool(data, "show_timings"); ok {
		cli.ShowTimings = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
