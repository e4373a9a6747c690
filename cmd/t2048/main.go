// t2048 is the 2048 sliding-tile puzzle for the terminal and the desktop.
//
// Usage:
//
//	t2048 play              - Play in the terminal
//	t2048 window            - Play in a desktop window
//	t2048 sim               - Run scripted or random moves headless
//	t2048 config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Use a specific config file
//	--log-file <path>   - Log file for interactive commands (default: ~/.t2048/t2048.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle. Tiles glide across the board at a
constant speed and equal neighbours merge once per move.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run moves headless and print the boards
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --seed 42 --watch
  t2048 window --config ./my-2048.yaml
  t2048 sim --moves LLURDD --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.t2048/t2048.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if flagFPS > 0 {
		cfg.Animation.TickRate = flagFPS
	}
	return cfg, source, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens the log file of the interactive commands, which cannot
// log to the terminal they draw on.
func openLogFile() (*os.File, error) {
	path := flagLogFile
	if path == "" {
		path = filepath.Join(config.DataDir(), "t2048.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// startWatcher watches the config file the game was loaded from.
func startWatcher(source string, logger *log.Logger) *config.Watcher {
	if source == config.SourceEmbedded {
		logger.Warn("--watch ignored: no config file in use")
		return nil
	}
	w, err := config.Watch(source)
	if err != nil {
		logger.Warn("config watch failed", "path", source, "error", err)
		return nil
	}
	logger.Info("watching config", "path", source)
	return w
}

// exitErr prints an error the way every command reports failures.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
