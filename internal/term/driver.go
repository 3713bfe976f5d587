// Package term runs a simulation in a terminal using tcell.
package term

import (
	"context"
	"time"

	"lifekit/internal/app"
	"lifekit/internal/ctxlog"
	"lifekit/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond
	liveRune      = '█'
)

// Driver draws one cell per terminal column and reserves the bottom row for
// a status line.
type Driver struct {
	screen tcell.Screen
	loop   *app.Loop

	liveStyle   tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// New returns a driver for an initialized screen.
func New(screen tcell.Screen, loop *app.Loop) *Driver {
	return &Driver{
		screen:      screen,
		loop:        loop,
		liveStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		deadStyle:   tcell.StyleDefault.Background(tcell.ColorBlack),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	}
}

// Run processes input and advances the loop until the user quits or ctx is
// cancelled. The caller owns the screen and must Fini it afterwards.
func (d *Driver) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	events := make(chan tcell.Event, 8)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("terminal driver cancelled", "err", ctx.Err())
			return nil
		case ev := <-events:
			if d.HandleEvent(ev) {
				logger.Info("quit requested", "status", ui.StatusLine(d.loop.Sim(), d.loop.Paused()))
				return nil
			}
		case <-ticker.C:
			if d.loop.Tick() {
				d.Draw()
			}
		}
	}
}

// HandleEvent applies a tcell event and reports whether the driver should exit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		d.screen.Sync()
		d.Draw()
	}
	return false
}

func (d *Driver) handleKey(key tcell.Key, r rune) bool {
	cmd := commandFor(key, r)
	if cmd == app.CmdNone {
		return false
	}
	if d.loop.Apply(cmd) {
		return true
	}
	if cmd == app.CmdStep {
		d.loop.Tick()
	}
	d.Draw()
	return false
}

func commandFor(key tcell.Key, r rune) app.Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.CmdQuit
	case tcell.KeyEnter:
		return app.CmdResume
	case tcell.KeyRune:
		switch r {
		case 'q':
			return app.CmdQuit
		case ' ':
			return app.CmdTogglePause
		case 'n':
			return app.CmdStep
		case 'r':
			return app.CmdReset
		case 's':
			return app.CmdReseed
		}
	}
	return app.CmdNone
}

// Draw renders the visible part of the grid and the status line.
func (d *Driver) Draw() {
	d.screen.Clear()
	w, h := d.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	sim := d.loop.Sim()
	size := sim.Size()
	cells := sim.Cells()

	rows := min(size.H, h-1)
	cols := min(size.W, w)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if cells[y*size.W+x] != 0 {
				d.screen.SetContent(x, y, liveRune, nil, d.liveStyle)
				continue
			}
			d.screen.SetContent(x, y, ' ', nil, d.deadStyle)
		}
	}

	status := []rune(ui.StatusLine(sim, d.loop.Paused()) + "  " + ui.KeyHelp)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		d.screen.SetContent(x, h-1, r, nil, d.statusStyle)
	}
	d.screen.Show()
}
