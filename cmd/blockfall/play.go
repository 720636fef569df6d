package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var (
	flagDifficulty string
	flagSeed       int64
	flagShapes     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of blockfall.

Controls:
  Left/A, Right/D  - Move the piece
  Down/S           - Soft drop
  Up/W/Space       - Rotate clockwise
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and a longer lock delay
  normal - Values from the config file
  hard   - Faster start, faster progression, shorter lock delay
  fixed  - Speed never increases

Shape catalogs:
  reference - The classic seven entries (two repeat, no S or Z)
  standard  - The seven distinct tetrominoes

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42 --shapes standard
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagShapes, "shapes", "", "Shape catalog: reference, standard")
}

// loadConfig applies the config file, difficulty preset and shape flag.
func loadConfig(path, difficulty, shapes string) (config.BlockfallConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if shapes != "" {
		cfg.Pieces.Preset = shapes
		cfg.Pieces.Custom = nil
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(flagConfig, flagDifficulty, flagShapes)
	if err != nil {
		return err
	}
	if preset, _ := config.ParsePreset(flagDifficulty); config.IsFixedPreset(preset) {
		logger.Info("speed progression disabled", "speed", cfg.Speed.Initial)
	}
	engineCfg, err := cfg.Engine(flagSeed)
	if err != nil {
		return err
	}
	if d := tetris.Duplicates(engineCfg.Shapes); len(d) > 0 {
		logger.Warn("shape catalog has duplicate entries", "pairs", d)
	}

	game, err := tetris.NewGame(engineCfg, cfg.Input.ReleaseAfterTicks, logger)
	if err != nil {
		return err
	}

	// Get terminal size, keeping the defaults if stdout is not a terminal
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	logger.Info("starting game", "width", rc.ScreenW, "height", rc.ScreenH, "difficulty", flagDifficulty)

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	state := game.State()
	fmt.Printf("Final score: %d (level %d)\n", state.Score, state.Level)
	return nil
}
