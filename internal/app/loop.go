package app

import (
	"time"

	"lifekit/internal/core"
)

// Command is a user action shared by every driver.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdTogglePause
	CmdResume
	CmdStep
	CmdReset
	CmdReseed
)

// Loop owns a simulation on behalf of a driver. It decides when the sim
// advances and applies user commands between steps.
type Loop struct {
	sim      core.Sim
	pace     *core.FixedStep
	paused   bool
	tickOnce bool
	seed     int64
	newSeed  func() int64
}

// NewLoop wraps sim, advancing once per interval.
func NewLoop(sim core.Sim, interval time.Duration, seed int64) *Loop {
	return &Loop{
		sim:     sim,
		pace:    core.NewFixedInterval(interval),
		seed:    seed,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// Sim returns the wrapped simulation.
func (l *Loop) Sim() core.Sim { return l.sim }

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// Seed returns the seed used by the last reset.
func (l *Loop) Seed() int64 { return l.seed }

// Apply executes cmd and reports whether the driver should exit.
func (l *Loop) Apply(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return true
	case CmdTogglePause:
		l.paused = !l.paused
	case CmdResume:
		l.paused = false
	case CmdStep:
		l.tickOnce = true
	case CmdReset:
		l.reset(l.seed)
	case CmdReseed:
		l.reset(l.newSeed())
	}
	return false
}

func (l *Loop) reset(seed int64) {
	l.seed = seed
	l.sim.Reset(seed)
	l.tickOnce = false
}

// Tick advances the sim if a step is due and reports whether it did.
func (l *Loop) Tick() bool {
	due := l.pace.ShouldStep()
	if l.tickOnce {
		l.tickOnce = false
		l.sim.Step()
		return true
	}
	if l.paused || !due {
		return false
	}
	l.sim.Step()
	return true
}
