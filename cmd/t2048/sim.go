package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

var (
	flagMoves string
	flagCount int
	flagQuiet bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run moves headless and print the boards",
	Long: `Play a game without a screen. Moves come from --moves, or are picked at
random when --moves is empty. Every board is printed after its move; the
run stops at game over.

Moves are direction names or letters, e.g. "LLUR" or "left,up,right".
Logs go to stderr.

Examples:
  t2048 sim --moves LLURDD --seed 7
  t2048 sim --count 500 --quiet`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script (U/D/L/R letters or names)")
	simCmd.Flags().IntVar(&flagCount, "count", 100, "Number of random moves when --moves is empty")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the final board")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		exitErr("%v", err)
	}

	var moves []t2048.Direction
	if flagMoves != "" {
		moves, err = t2048.ParseMoves(flagMoves)
		if err != nil {
			exitErr("%v", err)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "seed", seed, "config", source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := simulate(ctx, cmd.OutOrStdout(), logger, cfg, seed, moves)
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted")
	} else if err != nil {
		exitErr("%v", err)
	}
	logger.Info("done", "moves", sum.moves, "score", sum.score, "max", sum.maxTile, "game_over", sum.gameOver)
}

type simSummary struct {
	moves    int
	score    int
	maxTile  int
	gameOver bool
}

// simulate plays the scripted moves, or random ones when moves is nil.
func simulate(ctx context.Context, out io.Writer, logger *log.Logger, cfg config.Config,
	seed int64, moves []t2048.Direction) (simSummary, error) {
	settings := cfg.Settings()
	spawner := t2048.NewSpawner(seed, settings.FourProbability)
	board := t2048.NewBoard()
	for range settings.InitialTiles {
		if _, err := spawner.Spawn(board, settings.Layout); err != nil {
			break
		}
	}
	resolver := t2048.NewResolver(board, settings.Layout, settings.MoveVelocity, spawner)

	count := len(moves)
	var rng *rand.Rand
	if moves == nil {
		count = flagCount
		rng = rand.New(rand.NewSource(seed ^ 0x2048))
	}

	var sum simSummary
	if !flagQuiet {
		fmt.Fprintf(out, "start\n%s\n\n", board)
	}

	for i := range count {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		var dir t2048.Direction
		if rng != nil {
			dir = t2048.Directions[rng.Intn(len(t2048.Directions))]
		} else {
			dir = moves[i]
		}

		res, err := resolver.Resolve(ctx, dir, nil)
		if res.Moved {
			sum.moves++
			sum.score += res.Score
		}
		if err != nil {
			sum.maxTile = board.MaxTile()
			fmt.Fprintf(out, "%s\n", board)
			return sum, err
		}

		logger.Debug("move", "n", i+1, "direction", dir, "outcome", res.Outcome,
			"passes", res.Passes, "merges", res.Merges, "score", res.Score)
		if !flagQuiet {
			fmt.Fprintf(out, "move %d: %s -> %s (+%d, score %d)\n%s\n\n",
				i+1, dir, res.Outcome, res.Score, sum.score, board)
		}

		if res.Outcome == t2048.OutcomeGameOver {
			sum.gameOver = true
			break
		}
	}

	sum.maxTile = board.MaxTile()
	if flagQuiet {
		fmt.Fprintf(out, "%s\n", board)
	}
	fmt.Fprintf(out, "score %d, moves %d, max tile %d\n", sum.score, sum.moves, sum.maxTile)
	return sum, nil
}
