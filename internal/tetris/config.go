package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Config holds every engine parameter.
type Config struct {
	GridWidth            int
	GridHeight           int
	InitialSpeed         int // ticks per second at level 1
	SpeedIncrement       int // added to the speed on every level-up
	RowsPerLevel         int
	PointsPerRow         int
	LockDelayTicks       int // failed gravity checks before a piece locks
	AccelerationInterval int // held ticks between extra horizontal steps
	Shapes               []Shape
	Palette              []core.Color
	Seed                 int64
}

// DefaultConfig is the classic setup: a 16×24 grid, ten ticks per
// second plus one per level, forty rows per level and a ten-tick lock
// delay.
func DefaultConfig() Config {
	return Config{
		GridWidth:            16,
		GridHeight:           24,
		InitialSpeed:         10,
		SpeedIncrement:       1,
		RowsPerLevel:         40,
		PointsPerRow:         100,
		LockDelayTicks:       10,
		AccelerationInterval: 10,
		Shapes:               ReferenceShapes(),
		Palette:              ReferencePalette(),
	}
}

// Validate checks the configuration and returns a *ConfigError for the
// first problem found.
func (c Config) Validate() error {
	switch {
	case c.GridWidth <= 0:
		return &ConfigError{Field: "grid width", Reason: "must be positive"}
	case c.GridHeight <= 0:
		return &ConfigError{Field: "grid height", Reason: "must be positive"}
	case c.InitialSpeed <= 0:
		return &ConfigError{Field: "initial speed", Reason: "must be positive"}
	case c.SpeedIncrement < 0:
		return &ConfigError{Field: "speed increment", Reason: "must not be negative"}
	case c.RowsPerLevel <= 0:
		return &ConfigError{Field: "rows per level", Reason: "must be positive"}
	case c.PointsPerRow < 0:
		return &ConfigError{Field: "points per row", Reason: "must not be negative"}
	case c.LockDelayTicks < 0:
		return &ConfigError{Field: "lock delay", Reason: "must not be negative"}
	case c.AccelerationInterval <= 0:
		return &ConfigError{Field: "acceleration interval", Reason: "must be positive"}
	}

	if _, err := NewCatalog(c.Shapes, c.Palette); err != nil {
		return err
	}
	for i, s := range c.Shapes {
		if s.Width() > c.GridWidth || s.Height() > c.GridHeight {
			return &ConfigError{
				Field:  fmt.Sprintf("shapes[%d]", i),
				Reason: fmt.Sprintf("shape %s does not fit a %dx%d grid", s, c.GridWidth, c.GridHeight),
			}
		}
	}
	return nil
}
