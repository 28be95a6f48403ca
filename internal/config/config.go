// Package config handles the .uuidprobe.yaml preferences file.
//
// The file is optional and is looked up in the working directory, then in
// the user's home directory:
//
//	no_color: true                    - disable terminal styling
//	history_dsn: "user:pw@tcp(...)/"  - MySQL DSN for the analysis ledger
//	formats: [canonical, oid]         - default output of the formats command
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = ".uuidprobe.yaml"

// EnvHistoryDSN overrides history_dsn when set in the environment (or in a
// .env file loaded by the CLI).
const EnvHistoryDSN = "UUIDPROBE_HISTORY_DSN"

// knownFormats are the representation names the formats command accepts.
var knownFormats = map[string]bool{
	"canonical": true,
	"braced":    true,
	"int":       true,
	"oid":       true,
	"urn":       true,
}

// Config represents the .uuidprobe.yaml preferences file.
type Config struct {
	NoColor    bool     `yaml:"no_color,omitempty"`
	HistoryDSN string   `yaml:"history_dsn,omitempty"`
	Formats    []string `yaml:"formats,omitempty"`
}

// Load reads the preferences file from the working directory or the home
// directory. A missing file is not an error: defaults are returned.
func Load() (*Config, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFrom(path)
	}
	return &Config{}, nil
}

// LoadFrom reads and parses a preferences file from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err // Return unwrapped for os.IsNotExist() checks
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// ApplyEnv lets the environment override file values.
func (c *Config) ApplyEnv() {
	if dsn := os.Getenv(EnvHistoryDSN); dsn != "" {
		c.HistoryDSN = dsn
	}
}

// Validate checks the format names. The DSN is validated by the history
// package when a connection is actually opened.
func (c *Config) Validate() error {
	for _, f := range c.Formats {
		if !knownFormats[f] {
			return fmt.Errorf("unknown format %q (want canonical, braced, int, oid or urn)", f)
		}
	}
	return nil
}
