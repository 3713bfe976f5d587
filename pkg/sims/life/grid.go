package life

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"lifekit/internal/core"
	pcore "lifekit/pkg/core"
)

// Cell states. Any other value in a grid is a bug.
const (
	Off uint8 = 0
	On  uint8 = 255
)

// RandomDensity is the probability that RandomGrid turns a cell on.
const RandomDensity = 0.2

var (
	// ErrInvalidSize is returned for grid sizes the engine cannot use.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned when a pattern does not fit at the requested anchor.
	ErrOutOfBounds = errors.New("pattern out of bounds")
	// ErrSizeMismatch is returned when two grids of different size are combined.
	ErrSizeMismatch = errors.New("grid size mismatch")
)

// Grid is an N×N board of On/Off cells with toroidal adjacency.
type Grid struct {
	b *core.ByteGrid
}

// NewGrid returns an all-Off grid of size n×n.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return &Grid{b: core.NewByteGrid(n, n)}, nil
}

// RandomGrid returns an n×n grid where every cell is independently On with
// probability RandomDensity. A nil rng uses a source seeded with 1.
func RandomGrid(n int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = pcore.NewRNG(1).Source()
	}
	pcore.FillBernoulli(rng, g.b.Cells(), RandomDensity, On, Off)
	return g, nil
}

// N returns the side length.
func (g *Grid) N() int { return g.b.W }

// Cells exposes the row-major backing slice.
func (g *Grid) Cells() []uint8 { return g.b.Cells() }

// At returns the state of (row, col). Coordinates wrap.
func (g *Grid) At(row, col int) uint8 { return g.b.At(col, row) }

// Alive reports whether (row, col) is On. Coordinates wrap.
func (g *Grid) Alive(row, col int) bool { return g.At(row, col) == On }

// Set turns (row, col) on or off. Coordinates wrap.
func (g *Grid) Set(row, col int, alive bool) {
	x, y := g.b.Wrap(col, row)
	v := Off
	if alive {
		v = On
	}
	g.b.Cells()[g.b.Index(x, y)] = v
}

// Population counts the On cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.b.Cells() {
		if c == On {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{b: core.NewByteGrid(g.b.W, g.b.H)}
	c.b.CopyFrom(g.b)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.N() != o.N() {
		return false
	}
	a, b := g.Cells(), o.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of 'O' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	n := g.N()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.Alive(row, col) {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Neighbors counts the On cells among the eight toroidal neighbours of (row, col).
func (g *Grid) Neighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(g.At(row+dy, col+dx) / On)
		}
	}
	return n
}

// Advance computes the next generation of g into a new grid. g is not modified.
func Advance(g *Grid) *Grid {
	next := &Grid{b: core.NewByteGrid(g.b.W, g.b.H)}
	advance(next, g)
	return next
}

// AdvanceInto computes the next generation of src into dst. dst must not be src.
func AdvanceInto(dst, src *Grid) error {
	if dst.N() != src.N() {
		return fmt.Errorf("%w: %d != %d", ErrSizeMismatch, dst.N(), src.N())
	}
	if dst == src {
		return fmt.Errorf("%w: destination aliases source", ErrSizeMismatch)
	}
	advance(dst, src)
	return nil
}

func advance(dst, src *Grid) {
	n := src.N()
	out := dst.b.Cells()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			neighbors := src.Neighbors(row, col)
			alive := src.Alive(row, col)
			idx := src.b.Index(col, row)
			out[idx] = Off
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[idx] = On
			}
		}
	}
}
