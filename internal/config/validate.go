package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/HaiFongPan/dirnav/internal/keys"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateKeysConfig(&config.Keys); err != nil {
		return fmt.Errorf("keys config validation failed: %w", err)
	}

	if err := validateBrowserConfig(&config.Browser); err != nil {
		return fmt.Errorf("browser config validation failed: %w", err)
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	return nil
}

// validateKeysConfig checks every binding parses as [ctrl-][alt-]<key>
func validateKeysConfig(config *KeysConfig) error {
	table := config.Table()

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := keys.ParseBinding(table[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// validateBrowserConfig validates search mode and hide patterns
func validateBrowserConfig(config *BrowserConfig) error {
	mode := strings.ToLower(config.SearchMode)
	if mode != SearchSubstring && mode != SearchFuzzy {
		return fmt.Errorf("invalid search_mode: %s (valid: %s, %s)", config.SearchMode, SearchSubstring, SearchFuzzy)
	}

	for _, pattern := range config.Hide {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid hide pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	return nil
}
