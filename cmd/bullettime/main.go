// bullettime is a terminal "dodge the bullets" arcade game.
//
// Usage:
//
//	bullettime play              - Play in the terminal
//	bullettime simulate          - Run rounds headless and print the results
//	bullettime config show       - Print the effective configuration
//	bullettime config init PATH  - Write the default configuration to PATH
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bullettime",
	Short: "Bullet Time - dodge the bullets in your terminal",
	Long: `Bullet Time is a terminal arcade game. Steer your square around the
arena and avoid the bouncing bullets. Every few seconds the bullets speed up,
another one joins and your score goes up.

Available commands:
  play      - Play in the terminal
  simulate  - Run rounds headless and print the results
  config    - Show or write the configuration

Examples:
  bullettime play
  bullettime play --difficulty hard
  bullettime simulate --rounds 10 --policy evade
  bullettime config init ./configs/bullettime.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
