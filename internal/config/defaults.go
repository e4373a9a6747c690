package config

import (
	_ "embed"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	l := t2048.DefaultLayout()
	return Config{
		Board: BoardConfig{
			OriginX:    l.OriginX,
			OriginY:    l.OriginY,
			CellWidth:  l.CellW,
			CellHeight: l.CellH,
			Outline:    l.Outline,
		},
		Animation: AnimationConfig{
			MoveVelocity: t2048.DefaultMoveVelocity,
			TickRate:     60,
		},
		Spawn: SpawnConfig{
			FourProbability: t2048.DefaultFourProbability,
			InitialTiles:    t2048.InitialTiles,
		},
		Window: WindowConfig{
			Width:    800,
			Height:   800,
			Title:    "2048",
			FontSize: 60,
		},
	}
}
