// Package config provides YAML-based configuration loading and difficulty
// presets for blockfall.
package config

import (
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// BlockfallConfig contains all configuration for a blockfall session.
type BlockfallConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Speed       SpeedConfig       `yaml:"speed"`
	Progression ProgressionConfig `yaml:"progression"`
	Lock        LockConfig        `yaml:"lock"`
	Input       InputConfig       `yaml:"input"`
	Pieces      PiecesConfig      `yaml:"pieces"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick rate in ticks per second.
type SpeedConfig struct {
	Initial   int `yaml:"initial"`   // Speed at level 1
	Increment int `yaml:"increment"` // Added on every level-up, 0 keeps it fixed
}

// ProgressionConfig defines scoring and leveling.
type ProgressionConfig struct {
	RowsPerLevel int `yaml:"rows_per_level"`
	PointsPerRow int `yaml:"points_per_row"`
}

// LockConfig defines how long a resting piece may still be adjusted.
type LockConfig struct {
	DelayTicks int `yaml:"delay_ticks"`
}

// InputConfig defines held-key behavior.
type InputConfig struct {
	AccelerationInterval int `yaml:"acceleration_interval"` // Held ticks between extra moves
	ReleaseAfterTicks    int `yaml:"release_after_ticks"`   // Ticks without a key event before a key counts as released
}

// PiecesConfig selects the shape catalog and color palette.
type PiecesConfig struct {
	Preset  string     `yaml:"preset"`            // "reference" or "standard"
	Custom  [][]string `yaml:"custom,omitempty"`  // Rows of '#' and '.', replaces the preset
	Palette []string   `yaml:"palette,omitempty"` // #rrggbb colors, empty uses the reference palette
}

// Shape catalog presets.
const (
	ShapesReference = "reference"
	ShapesStandard  = "standard"
)

func init() {
	registry.Register(ShapesReference, "classic seven entries, two repeated, no S or Z", tetris.ReferenceShapes)
	registry.Register(ShapesStandard, "the seven distinct tetrominoes", tetris.StandardShapes)
}
