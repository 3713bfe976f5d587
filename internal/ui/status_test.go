package ui

import (
	"testing"

	"lifekit/internal/core"
	"lifekit/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bareSim struct{}

func (bareSim) Name() string { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64) {}
func (bareSim) Step() {}
func (bareSim) Cells() []uint8 { return []uint8{0} }

func TestStatusLine(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Size = 12
	cfg.Pattern = "blinker"
	l, err := life.NewWithConfig(cfg)
	require.NoError(t, err)
	l.Step()

	assert.Equal(t, "life  gen 1  pop 3", StatusLine(l, false))
	assert.Equal(t, "life  gen 1  pop 3  [paused]", StatusLine(l, true))
	assert.Equal(t, "bare", StatusLine(bareSim{}, false))
}

func TestPanelLines(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Size = 20
	cfg.Pattern = "glider"
	l, err := life.NewWithConfig(cfg)
	require.NoError(t, err)

	lines := PanelLines(l, true)
	assert.Contains(t, lines, "Pattern: glider")
	assert.Contains(t, lines, "Anchor: 1,1")
	assert.Contains(t, lines, "Population: 5")
	assert.Contains(t, lines, "Density: 0.00")
	assert.Equal(t, "[paused]", lines[len(lines)-1])

	assert.Equal(t, []string{"bare"}, PanelLines(bareSim{}, false))
}
