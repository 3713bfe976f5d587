package life

import (
	"strconv"

	"lifekit/internal/core"
	pcore "lifekit/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping. It owns the
// live grid and a scratch buffer; Step computes into the scratch buffer and
// swaps the two, so readers never observe a half-updated generation.
type Life struct {
	cfg  Config
	cur  *Grid
	nxt  *Grid
	gen  int
	seed int64
}

// New returns a randomly seeded Life simulation of size n×n.
func New(n int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Size = n
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and returns a simulation reset with cfg.Seed.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, cur: cur, nxt: cur.Clone()}
	l.Reset(0)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Size, H: l.cfg.Size} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the live grid. It is replaced on every Step.
func (l *Life) Grid() *Grid { return l.cur }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Seed returns the seed used by the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// Reset reseeds the board. A zero seed reuses the configured seed. Pattern
// configurations ignore the seed and restamp the pattern on an empty board.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.seed = seed
	l.gen = 0
	if l.cfg.Pattern == "" {
		pcore.FillBernoulli(pcore.NewRNG(seed).Source(), l.cur.Cells(), RandomDensity, On, Off)
		return
	}
	l.cur.b.Clear()
	p, _ := PatternByName(l.cfg.Pattern)
	row, col := l.cfg.Anchor()
	// Validate already checked the fit.
	_ = Stamp(l.cur, p, row, col)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	advance(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Parameters publishes the configuration and counters for HUD display.
func (l *Life) Parameters() core.ParameterSnapshot {
	pattern := l.cfg.Pattern
	if pattern == "" {
		pattern = "random"
	}
	row, col := l.cfg.Anchor()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(l.cfg.Size)},
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: pattern},
				{Key: "anchor", Label: "Anchor", Type: core.ParamTypeString, Value: strconv.Itoa(row) + "," + strconv.Itoa(col)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.seed, 10)},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.density(), 'f', 2, 64)},
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.gen)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(l.Population())},
			},
		},
	}}
}

// density is the configured fraction of live cells at reset.
func (l *Life) density() float64 {
	if l.cfg.Pattern != "" {
		return 0
	}
	return RandomDensity
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
