package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard.

Controls:
  Arrows/WASD/HJKL - Move
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runWindow(cmd *cobra.Command, args []string) {
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
	logger.Info("starting", "frontend", "window", "config", source)

	opts := window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	}
	if flagWatch {
		opts.Watcher = startWatcher(source, logger)
		if opts.Watcher != nil {
			defer opts.Watcher.Close()
		}
	}

	if err := window.Run(opts); err != nil {
		logger.Error("window", "error", err)
		exitErr("%v", err)
	}
}
