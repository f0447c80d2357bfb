package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bullet-time/internal/core"
	"github.com/vovakirdan/bullet-time/internal/games/bullettime"
	"github.com/vovakirdan/bullet-time/internal/platform/tui"
)

var (
	flagBell    bool
	flagNoTitle bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round of Bullet Time.

Controls:
  WASD/Arrows  - Move
  Esc/P        - Pause / resume
  Space/R      - Restart (while paused or after game over)
  ?            - Toggle full help
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ramp: every 15s, bullets x1.05
  normal - Every 10s, bullets x1.1
  hard   - Faster bullets, every 6s, x1.15
  fixed  - No ramp, bullets keep their speed

Examples:
  bullettime play
  bullettime play --difficulty easy
  bullettime play --seed 42 --no-title
  bullettime play --log-file bullettime.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on game over")
	playCmd.Flags().BoolVar(&flagNoTitle, "no-title", false, "Skip the title screen")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("bullettime")
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}
	runtime.Seed = flagSeed

	opts := tui.Options{
		Input:     cfg.Input,
		Logger:    logger,
		SkipTitle: flagNoTitle,
	}
	if flagBell {
		opts.Bell = os.Stdout
	}

	if err := tui.Run(bullettime.New(cfg), runtime, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
