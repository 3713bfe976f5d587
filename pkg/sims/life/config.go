package life

import (
	"fmt"
	"strconv"
	"strings"
)

// MinSize is the largest side length a simulation refuses. Smaller boards
// cannot hold the built-in patterns with room to evolve.
const MinSize = 8

// Config controls how a Life simulation is sized and seeded.
type Config struct {
	Size int
	// Pattern names a built-in pattern. Empty means a random board.
	Pattern string
	// Row and Col anchor the pattern's top-left cell. Negative values select
	// the pattern's default anchor.
	Row, Col int
	Seed     int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 100, Row: -1, Col: -1, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable values keep
// their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = strings.ToLower(strings.TrimSpace(v))
		if c.Pattern == "none" || c.Pattern == "random" {
			c.Pattern = ""
		}
	}
	if v, ok := cfg["row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Row = parsed
		}
	}
	if v, ok := cfg["col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Col = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Anchor resolves the pattern anchor, applying defaults for negative values.
func (c Config) Anchor() (row, col int) {
	row, col = c.Row, c.Col
	def := 1
	if c.Pattern == GosperGun.name {
		def = 10
	}
	if row < 0 {
		row = def
	}
	if col < 0 {
		col = def
	}
	return row, col
}

// Validate checks the size and that the selected pattern fits at its anchor.
func (c Config) Validate() error {
	if c.Size <= MinSize {
		return fmt.Errorf("%w: %d (must be greater than %d)", ErrInvalidSize, c.Size, MinSize)
	}
	if c.Pattern == "" {
		return nil
	}
	p, ok := PatternByName(c.Pattern)
	if !ok {
		return fmt.Errorf("%w: unknown pattern %q (known: %s)", ErrInvalidPattern, c.Pattern, strings.Join(PatternNames(), ", "))
	}
	row, col := c.Anchor()
	if row >= c.Size || col >= c.Size || p.Height() > c.Size-row || p.Width() > c.Size-col {
		return fmt.Errorf("%w: %s at (%d,%d) in %dx%d grid", ErrOutOfBounds, p.Name(), row, col, c.Size, c.Size)
	}
	return nil
}
