package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ufo-blaster/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty levels",
	Long:  `Shows the spawn interval and fall speed of each level in the loaded config.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Difficulty levels:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %-8s  %-8s  %s\n", "Key", "Name", "Spawn", "Fall/tick")
	fmt.Printf("  %-3s  %-8s  %-8s  %s\n", "---", "----", "-----", "---------")

	for _, d := range config.Difficulties() {
		lvl := cfg.Level(d)
		fmt.Printf("  %-3d  %-8s  %-8s  %.3f\n", int(d), d, lvl.SpawnInterval, lvl.FallSpeed)
	}

	fmt.Println()
	fmt.Printf("Round: %s, win at %d points, up to %d saucers at once.\n",
		cfg.Round.Duration, cfg.Round.MaxScore, cfg.Saucer.MaxActive)
}
