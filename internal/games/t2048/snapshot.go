package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle        GameStateType = "idle"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Score   int
	Moves   int
	Board   [GridSize][GridSize]int
	MaxTile int
	State   GameStateType
	Last    Outcome
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case g.err != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.resolver.Animating():
		state = StateAnimating
	}

	return Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.board.Values(),
		MaxTile: g.board.MaxTile(),
		State:   state,
		Last:    g.last.Outcome,
	}
}
