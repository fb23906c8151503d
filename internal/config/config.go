// Package config loads optional tool settings from .repoaudit.yaml.
// The ignore rules used by verify are deliberately not configurable here;
// they are compiled into the program.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".repoaudit.yaml"

// Config represents repoaudit configuration options.
type Config struct {
	// PeekLines is the number of lines the peek command prints per file
	PeekLines int

	// LocExtensions adds source extensions to the loc command's built-in set
	LocExtensions []string

	// LocHistoryPath is the sqlite database recording loc runs
	LocHistoryPath string

	// AuthFiles overrides the list of files documented by authdoc
	AuthFiles []string

	// AuthDocOutput is the markdown file authdoc writes
	AuthDocOutput string

	// WatchDebounce is the quiet period before verify --watch re-runs
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		PeekLines:      10,
		LocHistoryPath: ".repoaudit/loc.db",
		AuthDocOutput:  "auth-files-documentation.md",
		WatchDebounce:  500 * time.Millisecond,
	}
}

// Load reads the config file at path, falling back to defaults for any
// field left unset. A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Temporary struct to handle duration parsing
	type yamlConfig struct {
		PeekLines      int      `yaml:"peek_lines"`
		LocExtensions  []string `yaml:"loc_extensions"`
		LocHistoryPath string   `yaml:"loc_history_path"`
		AuthFiles      []string `yaml:"auth_files"`
		AuthDocOutput  string   `yaml:"authdoc_output"`
		WatchDebounce  string   `yaml:"watch_debounce"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.PeekLines > 0 {
		cfg.PeekLines = yamlCfg.PeekLines
	}
	if len(yamlCfg.LocExtensions) > 0 {
		cfg.LocExtensions = yamlCfg.LocExtensions
	}
	if yamlCfg.LocHistoryPath != "" {
		cfg.LocHistoryPath = yamlCfg.LocHistoryPath
	}
	if len(yamlCfg.AuthFiles) > 0 {
		cfg.AuthFiles = yamlCfg.AuthFiles
	}
	if yamlCfg.AuthDocOutput != "" {
		cfg.AuthDocOutput = yamlCfg.AuthDocOutput
	}
	if yamlCfg.WatchDebounce != "" {
		debounce, err := time.ParseDuration(yamlCfg.WatchDebounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch_debounce %q: %w", yamlCfg.WatchDebounce, err)
		}
		cfg.WatchDebounce = debounce
	}

	return cfg, nil
}
