// Package window runs the game in a desktop window with Ebiten. Tiles are
// drawn at their pixel positions, so moves animate exactly as resolved.
package window

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

// Options configures the window front-end.
type Options struct {
	Config  config.Config
	Seed    int64
	Logger  *log.Logger     // Nil discards logs
	Watcher *config.Watcher // Nil disables hot reload
}

// Window implements ebiten.Game for a 2048 session.
type Window struct {
	game     *t2048.Game
	cfg      config.Config
	runtime  core.RuntimeConfig
	font     *text.GoTextFaceSource
	input    core.InputFrame
	logger   *log.Logger
	watcher  *config.Watcher
	gameOver bool
}

// New creates the window and starts a game.
func New(opts Options) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Window{
		game: t2048.New(opts.Config.Settings()),
		cfg:  opts.Config,
		runtime: core.RuntimeConfig{
			ScreenW:  opts.Config.Window.Width,
			ScreenH:  opts.Config.Window.Height,
			TickRate: opts.Config.Animation.TickRate,
			Seed:     opts.Seed,
		},
		font:    src,
		input:   core.NewInputFrame(),
		logger:  logger,
		watcher: opts.Watcher,
	}

	w.game.OnResult(func(res t2048.MoveResult) {
		logger.Debug("move resolved",
			"direction", res.Direction,
			"outcome", res.Outcome,
			"passes", res.Passes,
			"score", res.Score)
		if res.Outcome == t2048.OutcomeGameOver {
			logger.Info("game over", "score", w.game.Score(), "moves", w.game.Moves())
		}
	})
	w.reset(opts.Seed)
	return w, nil
}

func (w *Window) reset(seed int64) {
	w.runtime.Seed = seed
	w.game.Reset(w.runtime)
	w.gameOver = false
	w.logger.Info("new game", "seed", w.game.Seed())
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	w.pollConfig()

	if quit := pollKeys(&w.input); quit {
		return ebiten.Termination
	}

	if w.input.Has(core.ActionRestart) && w.gameOver {
		w.input.Clear()
		w.reset(time.Now().UnixNano())
		return nil
	}

	res := w.game.Step(w.input)
	w.gameOver = res.State.GameOver
	w.input.Clear()

	if err := w.game.Err(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// pollConfig applies a reloaded config file without blocking the frame.
func (w *Window) pollConfig() {
	if w.watcher == nil {
		return
	}

	select {
	case path, ok := <-w.watcher.Events:
		if !ok {
			w.watcher = nil
			return
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			w.logger.Warn("config reload failed", "path", path, "error", err)
			return
		}
		w.cfg = cfg
		w.game.Configure(cfg.Settings())
		ebiten.SetTPS(cfg.Animation.TickRate)
		w.logger.Info("config reloaded", "path", path)
	case err, ok := <-w.watcher.Errors:
		if ok {
			w.logger.Warn("config watcher", "error", err)
		}
	default:
	}
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorBackground))

	frame := w.game.Frame()
	w.drawHUD(screen, frame.Layout)
	drawEmptyCells(screen, frame.Layout)
	for _, t := range frame.Tiles {
		w.drawTile(screen, frame.Layout, t)
	}
	drawGrid(screen, frame.Layout)

	switch state := w.game.State(); {
	case w.game.Err() != nil:
		w.drawOverlay(screen, "INTERNAL ERROR", "Press Q to quit")
	case state.GameOver:
		w.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d", w.game.Score()), "Press R to restart")
	case state.Paused:
		w.drawOverlay(screen, "PAUSED", "Press P to resume")
	}
}

// Layout keeps the configured logical size; Ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Window.Width, w.cfg.Window.Height
}

// Game returns the running game.
func (w *Window) Game() *t2048.Game {
	return w.game
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Config.Animation.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
