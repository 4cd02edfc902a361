package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ASTA_"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings" koanf:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme" koanf:"theme"`
	Session     SessionConfig `yaml:"session" koanf:"session"`
	Roster      RosterConfig  `yaml:"roster" koanf:"roster"`
	Output      OutputConfig  `yaml:"output" koanf:"output"`
	Journal     JournalConfig `yaml:"journal" koanf:"journal"`
}

// SessionConfig controls assignment input handling
type SessionConfig struct {
	// SkipWords are label inputs that leave an entity unassigned (case-insensitive)
	SkipWords []string `yaml:"skip_words" koanf:"skip_words"`
}

// RosterConfig describes the spreadsheet layout, by column letter
type RosterConfig struct {
	SurnameColumn   string `yaml:"surname_column" koanf:"surname_column"`
	FirstNameColumn string `yaml:"first_name_column" koanf:"first_name_column"`
	ValueColumn     string `yaml:"value_column" koanf:"value_column"`
	HeaderRows      int    `yaml:"header_rows" koanf:"header_rows"`
}

// OutputConfig controls where results are written
type OutputConfig struct {
	Dir    string   `yaml:"dir" koanf:"dir"`
	Suffix string   `yaml:"suffix" koanf:"suffix"`
	Header []string `yaml:"header" koanf:"header"`
}

// JournalConfig controls the session audit journal
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
}

// New returns a Config holding the built-in defaults.
// Lists and colors stay empty here and are filled by applyDefaults, so a
// configured list replaces the default and a configured preset is honored.
func New() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Roster: RosterConfig{
			SurnameColumn:   "B",
			FirstNameColumn: "C",
			ValueColumn:     "G",
			HeaderRows:      1,
		},
		Output: OutputConfig{
			Dir:    ".",
			Suffix: "_auction_results",
		},
		Journal: JournalConfig{
			Enabled: true,
		},
	}
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	c := New()
	c.applyDefaults()
	return c
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) at ASTA_CONFIG, or the user config directory
//  3. env (prefix ASTA_, "__" separates sections: ASTA_OUTPUT__SUFFIX)
//
// A theme file named by ASTA_THEME_FILE is merged over the result.
func Load() (*Config, error) {
	cfg := New()
	k := koanf.New(".")

	if path, ok := configPath(); ok {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	loadThemeFile(cfg)
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadThemeFile loads and merges theme from ASTA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(envPrefix + "THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// configPath returns the config file to read, and false when there is none
func configPath() (string, bool) {
	if explicit := os.Getenv(envPrefix + "CONFIG"); explicit != "" {
		return explicit, true
	}

	var path string
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		path = filepath.Join(configHome, "asta", "config.yaml")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		path = filepath.Join(homeDir, ".config", "asta", "config.yaml")
	}

	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if len(c.Session.SkipWords) == 0 {
		c.Session.SkipWords = []string{"skip", "salta"}
	}
	if len(c.Output.Header) == 0 {
		c.Output.Header = []string{"Rider", "Team", "Price"}
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Journal.Path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Journal.Path = filepath.Join(home, ".asta", "journal.db")
		}
	}
}

// validate rejects values the rest of the program cannot work with
func (c *Config) validate() error {
	if len(c.Output.Header) != 3 {
		return fmt.Errorf("%w: output.header needs 3 names, got %d", ErrInvalidConfig, len(c.Output.Header))
	}
	if c.Roster.HeaderRows < 0 {
		return fmt.Errorf("%w: roster.header_rows must not be negative", ErrInvalidConfig)
	}

	// arrows are always bound to navigation
	seen := map[string]string{"up": "prev_entity", "down": "next_entity"}
	bindings := c.KeyMappings.all()
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		key := bindings[action]
		if other, ok := seen[key]; ok && other != action {
			return fmt.Errorf("%w: key %q is bound to both %s and %s", ErrInvalidConfig, key, other, action)
		}
		seen[key] = action
	}
	return nil
}
