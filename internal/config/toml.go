// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	SpellingBee SpellingBeeConfig `toml:"spellingbee"`
	Wordle      WordleConfig      `toml:"wordle"`
	Scan        ScanConfig        `toml:"scan"`
	Log         LogConfig         `toml:"log"`
}

// SpellingBeeConfig maps spelling bee settings.
type SpellingBeeConfig struct {
	WordsFile *string `toml:"words-file"`
	Clean     *bool   `toml:"clean"`
	Lengths   *bool   `toml:"lengths"`
}

// WordleConfig maps wordle helper settings.
type WordleConfig struct {
	WordsFile *string `toml:"words-file"`
	Clean     *bool   `toml:"clean"`
	Relaxed   *bool   `toml:"relaxed"`
	Explain   *bool   `toml:"explain"`
}

// ScanConfig maps dictionary scan settings shared by both solvers.
type ScanConfig struct {
	Workers  *int  `toml:"workers"`
	Progress *bool `toml:"progress"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// DefaultTemplate returns the commented config file written by the config command.
func DefaultTemplate(beeWords, wordleWords string) string {
	return fmt.Sprintf(`# wordhelp configuration
# Uncomment a value to enable it. CLI flags override config values.

[spellingbee]
# words-file = %q   # Word list path
# clean = false                   # Drop tokens that are not lowercase a-z
# lengths = false                 # Print a word-length table to stderr

[wordle]
# words-file = %q     # Word list path
# clean = false                   # Drop tokens that are not lowercase a-z
# relaxed = false                 # Ignore gray letters that are green or yellow elsewhere
# explain = false                 # Print the parsed constraints to stderr

[scan]
# workers = 0                     # Scan workers (0 = number of CPUs)
# progress = true                 # Show a progress bar on interactive terminals

[log]
# level = "warn"                  # trace, debug, info, warn, error
`, beeWords, wordleWords)
}
