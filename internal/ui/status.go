// Package ui formats simulation state for on-screen display.
package ui

import (
	"fmt"

	"lifekit/internal/core"
)

// KeyHelp lists the controls shared by every driver.
const KeyHelp = "space pause  enter resume  n step  r reset  s reseed  q quit"

// StatusLine summarizes the sim in one line for narrow displays.
func StatusLine(sim core.Sim, paused bool) string {
	line := sim.Name()
	if c, ok := sim.(core.Counter); ok {
		line += fmt.Sprintf("  gen %d  pop %d", c.Generation(), c.Population())
	}
	if paused {
		line += "  [paused]"
	}
	return line
}

// PanelLines returns the lines shown in a side panel: the sim's parameter
// snapshot when it publishes one, otherwise the status line.
func PanelLines(sim core.Sim, paused bool) []string {
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return []string{StatusLine(sim, paused)}
	}
	lines := p.Parameters().Lines()
	if paused {
		lines = append(lines, "", "[paused]")
	}
	return lines
}
