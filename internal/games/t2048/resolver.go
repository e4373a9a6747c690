package t2048

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// DefaultMoveVelocity is how many pixels a tile travels per pass.
const DefaultMoveVelocity = 20

// Phase is the resolver state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimating
)

// Outcome is how a move ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeMoved            // Tiles moved and a new tile spawned
	OutcomeNoMove           // Nothing could move in that direction
	OutcomeGameOver         // No legal move is left
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeNoMove:
		return "no_move"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// MoveResult summarizes a completed move.
type MoveResult struct {
	Direction Direction
	Outcome   Outcome
	Moved     bool      // Whether any tile moved or merged
	Passes    int       // Simulation passes, including the final idle one
	Merges    int       // Number of merges
	Score     int       // Sum of the values produced by merges
	Spawned   *TileView // Tile added after the move, if any
}

// RenderFunc receives one frame per simulation pass. It must not hold on to
// the frame beyond the call.
type RenderFunc func(Frame)

// Resolver slides tiles across the board one fixed step per pass until
// nothing can move, merging equal neighbours at most once per move.
//
// A move is a small state machine: Begin switches to PhaseAnimating,
// each Advance runs one pass, and the pass that changes nothing commits
// the board, spawns a tile and returns to PhaseIdle.
type Resolver struct {
	board    *Board
	layout   Layout
	velocity int
	spawner  *Spawner

	phase   Phase
	dir     Direction
	ax      axis
	merged  map[*Tile]bool
	passes  int
	budget  int
	changed bool
	merges  int
	score   int
}

// NewResolver creates a resolver for the board. A nil spawner disables spawning.
func NewResolver(board *Board, layout Layout, velocity int, spawner *Spawner) *Resolver {
	return &Resolver{
		board:    board,
		layout:   layout,
		velocity: max(velocity, 1),
		spawner:  spawner,
	}
}

// Board returns the board being resolved.
func (r *Resolver) Board() *Board {
	return r.board
}

// Layout returns the pixel geometry used for the simulation.
func (r *Resolver) Layout() Layout {
	return r.layout
}

// Phase returns the current state.
func (r *Resolver) Phase() Phase {
	return r.phase
}

// Animating reports whether a move is in flight.
func (r *Resolver) Animating() bool {
	return r.phase == PhaseAnimating
}

// Direction returns the direction of the move in flight.
func (r *Resolver) Direction() Direction {
	return r.dir
}

// Passes returns the number of passes run so far in the current move.
func (r *Resolver) Passes() int {
	return r.passes
}

// SetVelocity changes the step size. It takes effect on the next pass.
func (r *Resolver) SetVelocity(v int) {
	r.velocity = max(v, 1)
}

// SetLayout changes the geometry and re-snaps every tile. Only allowed while idle.
func (r *Resolver) SetLayout(l Layout) error {
	if r.Animating() {
		return ErrMoveInProgress
	}
	r.layout = l
	for _, t := range r.board.Tiles() {
		t.SetPosition(t.Row, t.Col, l)
	}
	return nil
}

// Begin starts a move in the given direction.
func (r *Resolver) Begin(dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if r.Animating() {
		return ErrMoveInProgress
	}

	r.phase = PhaseAnimating
	r.dir = dir
	r.ax = dir.axis(r.layout)
	r.merged = make(map[*Tile]bool)
	r.passes = 0
	r.changed = false
	r.merges = 0
	r.score = 0
	// Every tile crosses at most GridSize cells and merges shrink the set,
	// so this is far above any real move.
	r.budget = 4 * CellCount * (r.ax.extent/r.velocity + 2)
	return nil
}

// Advance runs one simulation pass. done is true once the move has
// resolved; res is only meaningful then. Advance on an idle resolver
// reports done with an empty result.
func (r *Resolver) Advance() (res MoveResult, done bool, err error) {
	if !r.Animating() {
		return MoveResult{}, true, nil
	}

	changed, err := r.pass()
	r.passes++
	if err != nil {
		r.phase = PhaseIdle
		return MoveResult{Direction: r.dir}, true, fmt.Errorf("t2048: %s pass %d: %w", r.dir, r.passes, err)
	}

	if changed {
		r.changed = true
		if r.passes >= r.budget {
			r.phase = PhaseIdle
			return MoveResult{Direction: r.dir}, true, fmt.Errorf("%w after %d passes", ErrStalled, r.passes)
		}
		return MoveResult{}, false, nil
	}

	res, err = r.finish()
	return res, true, err
}

// Resolve runs a whole move synchronously, calling render after every pass.
// Cancellation is checked between passes: once ctx is done the remaining
// passes run without rendering so the board is never left mid-move, and
// ctx.Err() is returned along with the result.
func (r *Resolver) Resolve(ctx context.Context, dir Direction, render RenderFunc) (MoveResult, error) {
	if err := r.Begin(dir); err != nil {
		return MoveResult{}, err
	}

	var cancelled error
	for {
		if cancelled == nil {
			if cancelled = ctx.Err(); cancelled != nil {
				render = nil
			}
		}

		res, done, err := r.Advance()
		if err != nil {
			return res, err
		}
		if render != nil {
			render(r.board.Frame(r.layout))
		}
		if done {
			return res, cancelled
		}
	}
}

// pass advances every movable tile by one step, leading tiles first.
func (r *Resolver) pass() (bool, error) {
	tiles := r.board.Tiles()
	sort.SliceStable(tiles, func(i, j int) bool {
		return r.ax.lane(tiles[i]) < r.ax.lane(tiles[j])
	})

	step := r.velocity
	changed := false

	for _, t := range tiles {
		if !r.board.Contains(t) {
			continue // absorbed earlier in this pass
		}
		lane := r.ax.lane(t)
		if lane == 0 {
			continue
		}

		d := r.ax.dist(t)
		edge := (lane - 1) * r.ax.extent
		next := r.board.Get(r.ax.cell(t, lane-1))

		switch {
		case next == nil:
			r.ax.setDist(t, max(d-step, edge))

		case next.Value == t.Value && !r.merged[t] && !r.merged[next]:
			if d-r.ax.dist(next) <= step {
				r.merge(t, next)
				changed = true
				continue
			}
			// Stay out of the next cell until its tile has left it.
			if d-step <= edge {
				continue
			}
			r.ax.setDist(t, d-step)

		default:
			if d-r.ax.dist(next)-r.ax.extent <= step {
				continue
			}
			r.ax.setDist(t, d-step)
		}

		changed = true
		if err := r.settle(t); err != nil {
			return changed, err
		}
	}

	return changed, nil
}

// settle re-registers a tile on the cell its pixel position rounds to.
func (r *Resolver) settle(t *Tile) error {
	lane := r.ax.settledLane(r.ax.dist(t))
	if lane == r.ax.lane(t) {
		return nil
	}
	row, col := r.ax.cell(t, lane)
	return r.board.relocate(t, row, col)
}

// merge absorbs t into the tile ahead of it.
func (r *Resolver) merge(t, into *Tile) {
	into.Value *= 2
	r.merged[into] = true
	r.board.Remove(t)
	r.merges++
	r.score += into.Value
}

// finish commits a converged move and decides its outcome.
func (r *Resolver) finish() (MoveResult, error) {
	r.phase = PhaseIdle
	res := MoveResult{
		Direction: r.dir,
		Moved:     r.changed,
		Passes:    r.passes,
		Merges:    r.merges,
		Score:     r.score,
	}

	if !r.changed {
		res.Outcome = OutcomeNoMove
		if !r.board.CanMove() {
			res.Outcome = OutcomeGameOver
		}
		return res, nil
	}

	for _, t := range r.board.Tiles() {
		t.SetPosition(t.Row, t.Col, r.layout)
	}

	res.Outcome = OutcomeMoved
	if r.spawner != nil {
		t, err := r.spawner.Spawn(r.board, r.layout)
		switch {
		case errors.Is(err, ErrBoardFull):
			res.Outcome = OutcomeGameOver
			return res, nil
		case err != nil:
			return res, fmt.Errorf("t2048: spawn: %w", err)
		}
		v := t.view()
		res.Spawned = &v
	}

	if !r.board.CanMove() {
		res.Outcome = OutcomeGameOver
	}
	return res, nil
}
