package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidPattern is returned for malformed pattern text.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a fixed block of cells stamped onto a grid with its top-left
// corner at an anchor. Patterns are never modified after construction.
type Pattern struct {
	name  string
	h, w  int
	cells []uint8
}

// ParsePattern builds a pattern from equal-length rows of 'O' (on) and '.' (off).
func ParsePattern(name string, rows ...string) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, fmt.Errorf("%w %q: empty", ErrInvalidPattern, name)
	}
	w := len(rows[0])
	cells := make([]uint8, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return Pattern{}, fmt.Errorf("%w %q: row %d has width %d, want %d", ErrInvalidPattern, name, i, len(row), w)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case 'O':
				cells = append(cells, On)
			case '.':
				cells = append(cells, Off)
			default:
				return Pattern{}, fmt.Errorf("%w %q: unexpected %q at row %d col %d", ErrInvalidPattern, name, row[j], i, j)
			}
		}
	}
	return Pattern{name: name, h: len(rows), w: w, cells: cells}, nil
}

func mustPattern(name string, rows ...string) Pattern {
	p, err := ParsePattern(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Height returns the number of rows.
func (p Pattern) Height() int { return p.h }

// Width returns the number of columns.
func (p Pattern) Width() int { return p.w }

// At returns the state at (row, col) within the pattern.
func (p Pattern) At(row, col int) uint8 { return p.cells[row*p.w+col] }

// Built-in patterns.
var (
	Glider = mustPattern("glider",
		"..O",
		"O.O",
		".OO",
	)

	Block = mustPattern("block",
		"OO",
		"OO",
	)

	Blinker = mustPattern("blinker",
		"OOO",
	)

	// GosperGun is the canonical 36×9 Gosper glider gun inside an 11×38 frame.
	GosperGun = mustPattern("gosper",
		"......................................",
		".........................O............",
		".......................O.O............",
		".............OO......OO............OO.",
		"............O...O....OO............OO.",
		".OO........O.....O...OO...............",
		".OO........O...O.OO....O.O............",
		"...........O.....O.......O............",
		"............O...O.....................",
		".............OO.......................",
		"......................................",
	)
)

var patterns = map[string]Pattern{
	Glider.name:    Glider,
	Block.name:     Block,
	Blinker.name:   Blinker,
	GosperGun.name: GosperGun,
}

// PatternByName looks up a built-in pattern.
func PatternByName(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// PatternNames lists the built-in patterns.
func PatternNames() []string {
	out := make([]string, 0, len(patterns))
	for name := range patterns {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Stamp overwrites the block of g anchored at (row, col) with p. The block
// must fit inside the grid without wrapping; on error g is unchanged.
func Stamp(g *Grid, p Pattern, row, col int) error {
	n := g.N()
	if !g.b.Contains(col, row) || p.h > n-row || p.w > n-col {
		return fmt.Errorf("%w: %s (%dx%d) at (%d,%d) in %dx%d grid", ErrOutOfBounds, p.name, p.h, p.w, row, col, n, n)
	}
	cells := g.Cells()
	for r := 0; r < p.h; r++ {
		copy(cells[(row+r)*n+col:(row+r)*n+col+p.w], p.cells[r*p.w:(r+1)*p.w])
	}
	return nil
}
