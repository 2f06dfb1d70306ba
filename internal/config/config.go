package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppName names the config directory, env prefix and log directory.
const AppName = "dirnav"

// ErrConfigNotFound is returned when no config file exists at any search path.
var ErrConfigNotFound = errors.New("config file not found")

//go:embed default.toml
var defaultTOML []byte

// Config holds the complete application configuration
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Keys    KeysConfig    `mapstructure:"keys"`
	Browser BrowserConfig `mapstructure:"browser"`
	Log     LogConfig     `mapstructure:"log"`
}

// ThemeConfig holds colour names for the list panels
type ThemeConfig struct {
	Background      string `mapstructure:"background"`
	Text            string `mapstructure:"text"`
	SelectedBg      string `mapstructure:"selected_bg"`
	SelectedFg      string `mapstructure:"selected_fg"`
	Directory       string `mapstructure:"directory"`
	File            string `mapstructure:"file"`
	HighlightSymbol string `mapstructure:"highlight_symbol"`
}

// KeysConfig maps each action to a binding of the form [ctrl-][alt-]<key>
type KeysConfig struct {
	Quit        string `mapstructure:"quit"`
	Search      string `mapstructure:"search"`
	Cancel      string `mapstructure:"cancel"`
	Submit      string `mapstructure:"submit"`
	Down        string `mapstructure:"down"`
	Up          string `mapstructure:"up"`
	Delete      string `mapstructure:"delete"`
	Create      string `mapstructure:"create"`
	FocusFiles  string `mapstructure:"focus_files"`
	FocusDrives string `mapstructure:"focus_drives"`
	BackDir     string `mapstructure:"back_dir"`
	Reload      string `mapstructure:"reload"`
	CopyPath    string `mapstructure:"copy_path"`
	Open        string `mapstructure:"open"`
}

// BrowserConfig holds listing and search behaviour
type BrowserConfig struct {
	SearchMode      string   `mapstructure:"search_mode"`
	Hide            []string `mapstructure:"hide"`
	RememberLastDir bool     `mapstructure:"remember_last_dir"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Search modes
const (
	SearchSubstring = "substring"
	SearchFuzzy     = "fuzzy"
)

// Table returns the bindings keyed by action name.
func (k KeysConfig) Table() map[string]string {
	return map[string]string{
		"quit":         k.Quit,
		"search":       k.Search,
		"cancel":       k.Cancel,
		"submit":       k.Submit,
		"down":         k.Down,
		"up":           k.Up,
		"delete":       k.Delete,
		"create":       k.Create,
		"focus_files":  k.FocusFiles,
		"focus_drives": k.FocusDrives,
		"back_dir":     k.BackDir,
		"reload":       k.Reload,
		"copy_path":    k.CopyPath,
		"open":         k.Open,
	}
}

// Load reads config.toml from the explicit path, or from the first search path
// that has one. A missing file is an error wrapping ErrConfigNotFound.
// Environment variables (DIRNAV_KEYS_QUIT, DIRNAV_LOG_LEVEL, ...) override the file.
func Load(configPath string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), configPath, SearchPaths()...)
}

// LoadFs is Load against an arbitrary filesystem and search path list.
func LoadFs(fsys afero.Fs, configPath string, searchPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetFs(fsys)

	setDefaults(v)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults are plain strings, bools and string slices; decoding cannot fail.
	_ = v.Unmarshal(&config)
	return &config
}

// DefaultTOML returns the built-in configuration as a TOML document.
func DefaultTOML() []byte {
	out := make([]byte, len(defaultTOML))
	copy(out, defaultTOML)
	return out
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Theme defaults
	v.SetDefault("theme.background", "Reset")
	v.SetDefault("theme.text", "White")
	v.SetDefault("theme.selected_bg", "Blue")
	v.SetDefault("theme.selected_fg", "Black")
	v.SetDefault("theme.directory", "Cyan")
	v.SetDefault("theme.file", "Gray")
	v.SetDefault("theme.highlight_symbol", "> ")

	// Key defaults
	v.SetDefault("keys.quit", "q")
	v.SetDefault("keys.search", "/")
	v.SetDefault("keys.cancel", "esc")
	v.SetDefault("keys.submit", "enter")
	v.SetDefault("keys.down", "j")
	v.SetDefault("keys.up", "k")
	v.SetDefault("keys.delete", "D")
	v.SetDefault("keys.create", "a")
	v.SetDefault("keys.focus_files", "L")
	v.SetDefault("keys.focus_drives", "H")
	v.SetDefault("keys.back_dir", "backspace")
	v.SetDefault("keys.reload", "F5")
	v.SetDefault("keys.copy_path", "y")
	v.SetDefault("keys.open", "o")

	// Browser defaults
	v.SetDefault("browser.search_mode", SearchSubstring)
	v.SetDefault("browser.hide", []string{})
	v.SetDefault("browser.remember_last_dir", false)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// SearchPaths returns the directories probed for config.toml, in order:
// the executable's directory, the working directory, its parent, then ~/.dirnav.
func SearchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}
	paths = append(paths, ".", "..")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+AppName))
	}
	return paths
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, "."+AppName, "config.toml")
}
