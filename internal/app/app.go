//go:build ebiten

package app

import (
	"image/color"

	"lifekit/internal/render"
	"lifekit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a Loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided loop.
func New(loop *Loop, scale int) *Game {
	size := loop.Sim().Size()
	return &Game{
		loop:     loop,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(loop.Sim(), hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeyEscape, CmdQuit},
	{ebiten.KeySpace, CmdTogglePause},
	{ebiten.KeyEnter, CmdResume},
	{ebiten.KeyN, CmdStep},
	{ebiten.KeyR, CmdReset},
	{ebiten.KeyS, CmdReseed},
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) && g.loop.Apply(kc.cmd) {
			return ebiten.Termination
		}
	}
	g.loop.Tick()
	g.hud.Update(g.loop.Paused())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.loop.Sim().Cells(), g.onColor, g.offColor, g.scale)
	s := g.loop.Sim().Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.loop.Sim().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
