package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, want %+v", cfg, Default())
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("animation:\n  move_velocity: 10\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Animation.MoveVelocity != 10 {
		t.Errorf("MoveVelocity = %d, want 10", cfg.Animation.MoveVelocity)
	}
	if cfg.Animation.TickRate != 60 || cfg.Board.CellWidth != 150 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero cell width", func(c *Config) { c.Board.CellWidth = 0 }},
		{"negative cell height", func(c *Config) { c.Board.CellHeight = -5 }},
		{"negative outline", func(c *Config) { c.Board.Outline = -1 }},
		{"zero velocity", func(c *Config) { c.Animation.MoveVelocity = 0 }},
		{"velocity too fast", func(c *Config) { c.Animation.MoveVelocity = 40 }},
		{"zero tick rate", func(c *Config) { c.Animation.TickRate = 0 }},
		{"probability above one", func(c *Config) { c.Spawn.FourProbability = 1.5 }},
		{"negative probability", func(c *Config) { c.Spawn.FourProbability = -0.1 }},
		{"no initial tiles", func(c *Config) { c.Spawn.InitialTiles = 0 }},
		{"too many initial tiles", func(c *Config) { c.Spawn.InitialTiles = 17 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero font", func(c *Config) { c.Window.FontSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  four_probability: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Spawn.FourProbability != 0.5 {
		t.Errorf("FourProbability = %g, want 0.5", cfg.Spawn.FourProbability)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(broken); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load(broken) error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("animation:\n  tick_rate: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalid", err)
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Board.CellWidth = 120
	cfg.Spawn.InitialTiles = 3

	s := cfg.Settings()
	if s.Layout.CellW != 120 || s.Layout.CellH != 150 || s.Layout.OriginY != 140 {
		t.Errorf("Layout = %+v", s.Layout)
	}
	if s.MoveVelocity != t2048.DefaultMoveVelocity || s.InitialTiles != 3 {
		t.Errorf("Settings = %+v", s)
	}
	if Default().Settings() != t2048.DefaultSettings() {
		t.Error("default config should map to the default game settings")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "move_velocity: 20") {
		t.Errorf("Marshal output missing move_velocity:\n%s", data)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  initial_tiles: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	// Files that are not watched are ignored.
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("spawn:\n  initial_tiles: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		want, _ := filepath.Abs(path)
		if name != want {
			t.Errorf("event for %q, want %q", name, want)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event after writing the config file")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Closing twice is safe.
	_ = w.Close()
}
