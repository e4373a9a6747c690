// Package config provides YAML-based configuration loading for the game:
// board geometry, animation speed, spawn odds and the desktop window.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all configuration for the game.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Window    WindowConfig    `yaml:"window"`
}

// BoardConfig defines the pixel geometry of the grid.
type BoardConfig struct {
	OriginX    int `yaml:"origin_x"`
	OriginY    int `yaml:"origin_y"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Outline    int `yaml:"outline"`
}

// AnimationConfig defines how fast moves resolve.
type AnimationConfig struct {
	MoveVelocity int `yaml:"move_velocity"` // Pixels per pass
	TickRate     int `yaml:"tick_rate"`     // Passes per second
}

// SpawnConfig defines new tile placement.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
	InitialTiles    int     `yaml:"initial_tiles"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	FontSize int    `yaml:"font_size"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	b := c.Board
	if b.CellWidth <= 0 || b.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %dx%d must be positive", ErrInvalid, b.CellWidth, b.CellHeight)
	}
	if b.Outline < 0 {
		return fmt.Errorf("%w: outline %d is negative", ErrInvalid, b.Outline)
	}

	// A tile must need at least four passes to cross a cell; faster steps
	// let a trailing tile catch up with one that is still merging ahead.
	v := c.Animation.MoveVelocity
	if v < 1 || 4*v > min(b.CellWidth, b.CellHeight) {
		return fmt.Errorf("%w: move_velocity %d must be between 1 and a quarter of the cell size", ErrInvalid, v)
	}
	if c.Animation.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d must be positive", ErrInvalid, c.Animation.TickRate)
	}

	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: four_probability %g outside [0, 1]", ErrInvalid, p)
	}
	if n := c.Spawn.InitialTiles; n < 1 || n > t2048.CellCount {
		return fmt.Errorf("%w: initial_tiles %d outside [1, %d]", ErrInvalid, n, t2048.CellCount)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FontSize <= 0 {
		return fmt.Errorf("%w: font_size %d must be positive", ErrInvalid, c.Window.FontSize)
	}
	return nil
}

// Layout converts the board section to grid geometry.
func (c Config) Layout() t2048.Layout {
	return t2048.Layout{
		OriginX: c.Board.OriginX,
		OriginY: c.Board.OriginY,
		CellW:   c.Board.CellWidth,
		CellH:   c.Board.CellHeight,
		Outline: c.Board.Outline,
	}
}

// Settings converts the configuration to game settings.
func (c Config) Settings() t2048.Settings {
	return t2048.Settings{
		Layout:          c.Layout(),
		MoveVelocity:    c.Animation.MoveVelocity,
		FourProbability: c.Spawn.FourProbability,
		InitialTiles:    c.Spawn.InitialTiles,
	}
}
