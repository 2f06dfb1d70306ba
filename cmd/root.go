package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/dirnav/internal/config"
	"github.com/HaiFongPan/dirnav/internal/fsys"
	"github.com/HaiFongPan/dirnav/internal/tui"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	globalConfig *config.Config
	configErr    error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dirnav [path]",
	Short: "A keyboard-driven terminal file browser",
	Long: `dirnav is a three-panel terminal file browser: mount points, the current
directory and a preview of the selected entry. Every key binding is configurable
in a TOML file and the configuration can be reloaded without restarting.

Example usage:
  dirnav                  # Browse the working directory
  dirnav ~/projects       # Browse a specific directory
  dirnav list --filter go # Print a filtered listing
  dirnav keys             # Show the active key bindings
  dirnav init             # Write the default config file`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.dirnav/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
}

// loadConfig loads the configuration the same way at startup and on reload.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// initConfig reads in config file and ENV variables if set. A missing or
// broken file falls back to the built-in configuration; the browser reports
// the error in its status line.
func initConfig() error {
	globalConfig, configErr = loadConfig()
	if configErr != nil {
		globalConfig = config.Default()
	}

	// Configure logging
	setupLogging()

	if configErr != nil {
		logrus.Warnf("Using default configuration: %v", configErr)
	}
	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	// Set log level
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file to prevent UI interference
	logFile := globalConfig.Log.File
	if logFile == "" {
		logFile = filepath.Join(os.TempDir(), config.AppName, "app.log")
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		logrus.Warnf("Failed to create log directory %s: %v", filepath.Dir(logFile), err)
	} else {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	// Set log format
	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// startDir picks the directory the browser opens in: the argument, then the
// remembered directory, then the working directory.
func startDir(args []string, gateway *fsys.Gateway) (string, error) {
	if len(args) > 0 {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid path %s: %w", args[0], err)
		}
		if !gateway.IsDir(dir) {
			return "", fmt.Errorf("%s is not a directory", dir)
		}
		return dir, nil
	}

	if globalConfig.Browser.RememberLastDir {
		ud := config.LoadUserData(gateway.Fs(), config.UserDataPath())
		if ud.LastDir != "" && gateway.IsDir(ud.LastDir) {
			return ud.LastDir, nil
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return ".", nil
	}
	return dir, nil
}

// runBrowser runs the interactive file browser
func runBrowser(args []string) error {
	gateway := fsys.NewOS()

	dir, err := startDir(args, gateway)
	if err != nil {
		return err
	}

	store := config.NewStore(globalConfig, loadConfig)
	model := tui.NewBrowserModel(store, gateway, dir)
	if configErr != nil {
		model.ReportConfigLoadError(configErr)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	if store.Current().Browser.RememberLastDir {
		rememberDir(gateway.Fs(), model.Directory().Path())
	}
	return nil
}

func rememberDir(fs afero.Fs, dir string) {
	ud := &config.UserData{LastDir: dir}
	if err := ud.Save(fs, config.UserDataPath()); err != nil {
		logrus.Warnf("Failed to save last directory: %v", err)
	}
}
