// Package t2048 implements the 2048 sliding-tile puzzle: a pixel-space move
// resolver on a 4x4 board, plus the game session that drives it one pass per
// tick.
package t2048

import (
	"time"

	"github.com/vovakirdan/tile2048/internal/core"
)

// InitialTiles is the number of tiles on a fresh board.
const InitialTiles = 2

// Settings are the tunables a game reads from configuration.
type Settings struct {
	Layout          Layout
	MoveVelocity    int
	FourProbability float64
	InitialTiles    int
}

// DefaultSettings returns the classic setup.
func DefaultSettings() Settings {
	return Settings{
		Layout:          DefaultLayout(),
		MoveVelocity:    DefaultMoveVelocity,
		FourProbability: DefaultFourProbability,
		InitialTiles:    InitialTiles,
	}
}

// Game is one 2048 session.
type Game struct {
	settings Settings
	pending  *Settings // applied at the next idle point

	board    *Board
	resolver *Resolver
	spawner  *Spawner
	seed     int64
	tick     uint64

	score    int
	moves    int
	queued   *Direction // move requested while another was animating
	last     MoveResult
	err      error
	onResult func(MoveResult)

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game with the given settings. Call Reset before use.
func New(s Settings) *Game {
	return &Game{settings: s}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// OnResult registers a callback invoked after every resolved move.
func (g *Game) OnResult(fn func(MoveResult)) {
	g.onResult = fn
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.pending != nil {
		g.settings = *g.pending
		g.pending = nil
	}

	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.spawner = NewSpawner(g.seed, g.settings.FourProbability)
	g.board = NewBoard()
	g.resolver = NewResolver(g.board, g.settings.Layout, g.settings.MoveVelocity, g.spawner)

	g.tick = 0
	g.score = 0
	g.moves = 0
	g.queued = nil
	g.last = MoveResult{}
	g.err = nil
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	for range max(g.settings.InitialTiles, 1) {
		if _, err := g.spawner.Spawn(g.board, g.settings.Layout); err != nil {
			break
		}
	}

	g.checkScreenSize()
}

// Seed returns the RNG seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Settings returns the settings in effect.
func (g *Game) Settings() Settings {
	return g.settings
}

// Configure replaces the settings. They are applied once no move is in
// flight; velocity and spawn odds of the running session change, the
// layout re-snaps the board.
func (g *Game) Configure(s Settings) {
	g.pending = &s
	g.applyPending()
}

func (g *Game) applyPending() {
	if g.pending == nil || g.resolver == nil || g.resolver.Animating() {
		return
	}
	s := *g.pending
	g.pending = nil

	if err := g.resolver.SetLayout(s.Layout); err != nil {
		g.err = err
		return
	}
	g.resolver.SetVelocity(s.MoveVelocity)
	g.spawner.FourProbability = s.FourProbability
	g.settings = s
}

// SetScreenSize updates the terminal dimensions without touching the board.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick: one resolver pass while a move is in
// flight, otherwise it starts the move requested by the input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := DirectionFromAction(in.Directional()); ok && !g.gameOver {
		g.request(dir)
	}

	if g.resolver.Animating() {
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// Move requests a move. While another move animates the request is queued,
// replacing any earlier queued one. It reports whether the move was
// accepted; moves are refused once the game is over.
func (g *Game) Move(dir Direction) bool {
	if g.gameOver || g.err != nil || !dir.Valid() {
		return false
	}
	g.request(dir)
	return true
}

func (g *Game) request(dir Direction) {
	if g.resolver.Animating() {
		g.queued = &dir
		return
	}
	if err := g.resolver.Begin(dir); err != nil {
		g.err = err
	}
}

// advance runs one pass and handles the end of a move.
func (g *Game) advance() {
	res, done, err := g.resolver.Advance()
	if err != nil {
		g.err = err
		return
	}
	if !done {
		return
	}

	g.last = res
	if res.Moved {
		g.moves++
		g.score += res.Score
	}
	if res.Outcome == OutcomeGameOver {
		g.gameOver = true
		g.queued = nil
	}
	if g.onResult != nil {
		g.onResult(res)
	}

	g.applyPending()

	if g.queued != nil && !g.gameOver {
		dir := *g.queued
		g.queued = nil
		if err := g.resolver.Begin(dir); err != nil {
			g.err = err
		}
	}
}

// Settle runs the move in flight, and any queued one, to completion.
func (g *Game) Settle() {
	for g.err == nil && g.resolver.Animating() {
		g.advance()
	}
}

// Err returns the internal error that halted the game, if any.
func (g *Game) Err() error {
	return g.err
}

// LastResult returns the result of the most recent move.
func (g *Game) LastResult() MoveResult {
	return g.last
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Frame returns the pixel snapshot for renderers.
func (g *Game) Frame() Frame {
	return g.board.Frame(g.resolver.Layout())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		GameOver:  g.gameOver || g.err != nil,
		Paused:    g.paused || g.tooSmall,
		Animating: g.resolver != nil && g.resolver.Animating(),
	}
}
