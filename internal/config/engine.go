package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Shapes resolves the configured shape catalog.
func (c BlockfallConfig) Shapes() ([]tetris.Shape, error) {
	if len(c.Pieces.Custom) > 0 {
		shapes := make([]tetris.Shape, len(c.Pieces.Custom))
		for i, rows := range c.Pieces.Custom {
			for _, r := range rows {
				if strings.Trim(r, "#.") != "" {
					return nil, fmt.Errorf("config: %w", &tetris.ConfigError{
						Field:  fmt.Sprintf("pieces.custom[%d]", i),
						Reason: fmt.Sprintf("row %q may only contain '#' and '.'", r),
					})
				}
			}
			shapes[i] = tetris.ParseShape(rows...)
		}
		return shapes, nil
	}

	name := c.Pieces.Preset
	if name == "" {
		name = ShapesReference
	}
	if !registry.Exists(name) {
		return nil, fmt.Errorf("config: %w", &tetris.ConfigError{
			Field:  "pieces.preset",
			Reason: fmt.Sprintf("unknown preset %q", c.Pieces.Preset),
		})
	}
	shapes, err := registry.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return shapes, nil
}

// Palette resolves the configured piece colors.
func (c BlockfallConfig) Palette() ([]core.Color, error) {
	if len(c.Pieces.Palette) == 0 {
		return tetris.ReferencePalette(), nil
	}
	palette := make([]core.Color, len(c.Pieces.Palette))
	for i, hex := range c.Pieces.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("config: %w", &tetris.ConfigError{
				Field:  fmt.Sprintf("pieces.palette[%d]", i),
				Reason: err.Error(),
			})
		}
		palette[i] = core.RGB(col.RGB255())
	}
	return palette, nil
}

// Engine converts the config into a validated engine configuration.
// Invalid values are reported as *tetris.ConfigError, so errors.Is with
// tetris.ErrInvalidConfig holds.
func (c BlockfallConfig) Engine(seed int64) (tetris.Config, error) {
	shapes, err := c.Shapes()
	if err != nil {
		return tetris.Config{}, err
	}
	palette, err := c.Palette()
	if err != nil {
		return tetris.Config{}, err
	}

	cfg := tetris.Config{
		GridWidth:            c.Grid.Width,
		GridHeight:           c.Grid.Height,
		InitialSpeed:         c.Speed.Initial,
		SpeedIncrement:       c.Speed.Increment,
		RowsPerLevel:         c.Progression.RowsPerLevel,
		PointsPerRow:         c.Progression.PointsPerRow,
		LockDelayTicks:       c.Lock.DelayTicks,
		AccelerationInterval: c.Input.AccelerationInterval,
		Shapes:               shapes,
		Palette:              palette,
		Seed:                 seed,
	}
	if err := cfg.Validate(); err != nil {
		return tetris.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
