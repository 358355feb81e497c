package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ufo-blaster/internal/audio"
	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
	"github.com/vovakirdan/ufo-blaster/internal/platform/tui"
	"github.com/vovakirdan/ufo-blaster/internal/storage"
)

var (
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play UFO Master Blaster",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W   - Fire (only when the launcher is loaded)
  Left/A       - Steer the missile left
  Right/D      - Steer the missile right
  Enter        - Start a round / dismiss the result
  Space        - Also starts a round from the menu
  1, 2, 3      - Pick Novice, Mini or Master in the menu
  Tab          - Best rounds of this session
  Q/Ctrl+C     - Quit

Scores are kept only while the program runs.

Examples:
  blaster play
  blaster play --difficulty 3
  blaster play --mute --log-file blaster.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
	// main prints the returned error once
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "novice", "Initial level: novice, mini, master or 1-3")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// runPlay returns errors instead of exiting so its deferred cleanup runs.
func runPlay(_ *cobra.Command, _ []string) error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadBlaster(flagConfig)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout; logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "blaster")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("round ledger unavailable", "error", err)
	} else {
		defer store.Close()
	}

	var player audio.Player = audio.NopPlayer{}
	if !flagMute {
		beeper := audio.NewBeepPlayer()
		// Opening the device can stall; cues are dropped until it is ready
		go func() {
			if err := beeper.Open(); err != nil {
				logger.Warn("sound disabled", "error", err)
			}
		}()
		player = beeper
	}

	opts := tui.Options{
		Blaster: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: difficulty,
		Player:     currentUser(),
		Store:      store,
		Audio:      player,
		Logger:     logger,
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	printSessionSummary(store)
	return nil
}

// printSessionSummary prints the best score per level played this session.
func printSessionSummary(store *storage.Store) {
	if store == nil {
		return
	}
	stats, err := store.Stats(context.Background())
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println("This session:")
	for _, s := range stats {
		fmt.Printf("  %-7s best %02d  (%d rounds, %d won)\n",
			config.Difficulty(s.Difficulty), s.BestScore, s.Rounds, s.Wins)
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
