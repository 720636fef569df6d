package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Grid: GridConfig{
			Width:  16,
			Height: 24,
		},
		Speed: SpeedConfig{
			Initial:   10,
			Increment: 1,
		},
		Progression: ProgressionConfig{
			RowsPerLevel: 40,
			PointsPerRow: 100,
		},
		Lock: LockConfig{
			DelayTicks: 10,
		},
		Input: InputConfig{
			AccelerationInterval: 10,
			ReleaseAfterTicks:    1,
		},
		Pieces: PiecesConfig{
			Preset: ShapesReference,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
