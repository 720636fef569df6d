package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration blockfall would play with, after the config
file search and the difficulty preset, as YAML.

Config search order:
  --config path
  ~/.blockfall/configs/blockfall.yaml
  ./configs/blockfall.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().StringVar(&flagShapes, "shapes", "", "Shape catalog: reference, standard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty, flagShapes)
	if err != nil {
		return err
	}
	// Fail on values the engine would reject.
	if _, err := cfg.Engine(0); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
