package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"lifekit/pkg/sims/life"
)

// Config represents the command-line parameters for the life viewers.
type Config struct {
	Sim      string
	GridSize int
	Interval int // milliseconds between generations
	Glider   bool
	Gosper   bool
	Row, Col int
	Seed     int64
	Scale    int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		GridSize: 100,
		Interval: 50,
		Row:      -1,
		Col:      -1,
		Seed:     42,
		Scale:    6,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.GridSize, "grid-size", c.GridSize, "side length of the square grid (must be greater than 8)")
	fs.IntVar(&c.Interval, "interval", c.Interval, "milliseconds between generations")
	fs.BoolVar(&c.Glider, "glider", c.Glider, "start from a single glider instead of a random board")
	fs.BoolVar(&c.Gosper, "gosper", c.Gosper, "start from a Gosper glider gun instead of a random board")
	fs.IntVar(&c.Row, "row", c.Row, "pattern anchor row (-1 for the pattern default)")
	fs.IntVar(&c.Col, "col", c.Col, "pattern anchor column (-1 for the pattern default)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Pattern returns the selected pattern name, or "" for a random board.
// -glider wins when both pattern flags are set.
func (c *Config) Pattern() string {
	switch {
	case c.Glider:
		return life.Glider.Name()
	case c.Gosper:
		return life.GosperGun.Name()
	default:
		return ""
	}
}

// SimConfig converts the flags into the key/value form sim factories accept.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size":    strconv.Itoa(c.GridSize),
		"pattern": c.Pattern(),
		"row":     strconv.Itoa(c.Row),
		"col":     strconv.Itoa(c.Col),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

// Period returns the time between generations.
func (c *Config) Period() time.Duration {
	return time.Duration(c.Interval) * time.Millisecond
}

// Validate rejects values the viewers cannot run with. Size and pattern
// checks belong to the sim factory.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %d", c.Interval)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}
