package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Move
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	logFile, err := openLogFile()
	if err != nil {
		exitErr("%v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		exitErr("%v", err)
	}
	logger.Info("starting", "frontend", "terminal", "config", source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Settings: cfg.Settings(),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Animation.TickRate,
			Seed:     flagSeed,
		},
		Logger: logger,
	}
	if flagWatch {
		opts.Watcher = startWatcher(source, logger)
		if opts.Watcher != nil {
			defer opts.Watcher.Close()
		}
	}

	if err := tui.Run(opts); err != nil {
		logger.Error("terminal ui", "error", err)
		exitErr("running game: %v", err)
	}
}
