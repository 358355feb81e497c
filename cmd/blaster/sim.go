package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
)

var flagSimLevel string

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run one round headlessly with the autopilot",
	Long: `Play one round without a terminal UI, using a simple autopilot,
at a fixed step of 1/fps seconds. Every event is logged at debug level.

The same --seed and --level always produce the same round.

Examples:
  blaster sim
  blaster sim --level master --seed 42
  blaster sim --level 2 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLevel, "level", "novice", "Level: novice, mini, master or 1-3")
}

func runSim(_ *cobra.Command, _ []string) {
	level, err := config.ParseDifficulty(flagSimLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := loadConfig()
	logger, closeLog := mustLogger(os.Stderr, "blaster-sim")
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}
	dt := rc.FrameInterval()

	game := blaster.New(cfg, blaster.NewRand(seed))
	game.SetDifficulty(level)

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	game.Step(dt, start)
	logger.Info("round started", "level", level, "seed", seed, "step", dt)

	// Cap the run well past the countdown in case of a bad config
	maxSteps := int(2 * cfg.Round.Duration / dt)

	for i := 0; i < maxSteps && game.Phase() == blaster.PhasePlaying; i++ {
		result := game.Step(dt, blaster.Autopilot(game.Snapshot()))
		for e := range result.All() {
			switch e.Kind {
			case blaster.EventCue:
				logger.Debug("cue", "t", game.Elapsed(), "cue", e.Cue, "score", result.Score)
			case blaster.EventExplosion:
				logger.Debug("hit", "t", game.Elapsed(), "lane", e.Explosion.Lane,
					"altitude", fmt.Sprintf("%.2f", e.Explosion.Altitude),
					"points", blaster.Points(e.Explosion.Altitude))
			case blaster.EventRoundOver:
				logger.Info("round over", "outcome", e.Outcome, "score", e.Score,
					"elapsed", game.Elapsed(), "ticks", game.Ticks())
			}
		}
	}

	fmt.Printf("%s  level=%s  score=%02d  time=%s  seed=%d\n",
		game.Phase(), level, game.Score(), game.Elapsed().Round(time.Millisecond), seed)
}
